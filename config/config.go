package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from the environment only.
type Config struct {
	SheetID     string `envconfig:"SHEET_ID" required:"true"`
	Credentials string `envconfig:"GOOGLE_CREDENTIALS" required:"true"`
}

func Load() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// envconfig accepts a variable that is set but empty
	if c.SheetID == "" {
		return nil, errors.New("SHEET_ID environment variable not set")
	}
	if c.Credentials == "" {
		return nil, errors.New("GOOGLE_CREDENTIALS environment variable not set")
	}

	return &c, nil
}
