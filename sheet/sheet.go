package sheet

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Values are sent as typed, formulas are not evaluated.
const valueInputOption = "RAW"

type Sheet struct {
	srv *sheets.Service
}

// New authenticates with a service-account key and returns a client scoped to
// spreadsheet read/write. opts are applied after the defaults.
func New(ctx context.Context, credentials string, opts ...option.ClientOption) (*Sheet, error) {
	if credentials == "" {
		return nil, errors.New("service account credentials are empty")
	}

	conf, err := google.JWTConfigFromJSON([]byte(credentials), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}, opts...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Sheet{srv: srv}, nil
}

// Update overwrites the cells in rng and returns the number of cells updated.
func (s *Sheet) Update(ctx context.Context, sheetID, rng string, values [][]interface{}) (int64, error) {
	vr := sheets.ValueRange{Values: values}

	resp, err := s.srv.Spreadsheets.Values.Update(sheetID, rng, &vr).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return resp.UpdatedCells, nil
}

// Append adds values as new rows after the data already in rng and returns
// the number of cells appended.
func (s *Sheet) Append(ctx context.Context, sheetID, rng string, values [][]interface{}) (int64, error) {
	vr := sheets.ValueRange{Values: values}

	resp, err := s.srv.Spreadsheets.Values.Append(sheetID, rng, &vr).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if resp.Updates == nil {
		return 0, nil
	}

	return resp.Updates.UpdatedCells, nil
}

func (s *Sheet) WriteCell(ctx context.Context, sheetID, cell string, value any) error {
	_, err := s.Update(ctx, sheetID, cell, [][]interface{}{{value}})
	return err
}
