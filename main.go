package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/kan/sheetstamp/config"
	"github.com/kan/sheetstamp/sheet"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/option"
)

const (
	defaultRange = "Sheet1!A:B"
	defaultLabel = "Auto-updated by GitHub Actions"
	timeLayout   = "2006-01-02 15:04:05"
)

func main() {
	app := newApp(os.Stdout, time.Now)
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

// newApp builds the CLI. opts are passed through to the Sheets client.
func newApp(w io.Writer, now func() time.Time, opts ...option.ClientOption) *cli.App {
	return &cli.App{
		Name:   "sheetstamp",
		Usage:  "Stamp the current time and a label into a Google Sheet",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "range",
				Usage:   "A1 range to write to (e.g. Sheet1!A:B)",
				Aliases: []string{"r"},
				Value:   defaultRange,
			},
			&cli.StringFlag{
				Name:    "label",
				Usage:   "Text written next to the timestamp",
				Aliases: []string{"l"},
				Value:   defaultLabel,
			},
			&cli.BoolFlag{
				Name:  "update",
				Usage: "Overwrite the range instead of appending a row",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Only print the row that would be written.",
			},
		},
		Action: func(ctx *cli.Context) error {
			c, err := config.Load()
			if err != nil {
				return err
			}

			stamp := now().Format(timeLayout)
			values := [][]interface{}{{stamp, ctx.String("label")}}
			rng := ctx.String("range")

			if ctx.Bool("dry-run") {
				fmt.Fprintf(w, "%s: %v\n", rng, values)
				return nil
			}

			s, err := sheet.New(ctx.Context, c.Credentials, opts...)
			if err != nil {
				return err
			}

			if ctx.Bool("update") {
				n, err := s.Update(ctx.Context, c.SheetID, rng, values)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d cells updated.\n", n)
			} else {
				n, err := s.Append(ctx.Context, c.SheetID, rng, values)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d cells appended.\n", n)
			}

			fmt.Fprintf(w, "Successfully updated sheet at %s\n", stamp)
			return nil
		},
	}
}
