package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

type ExportCmd struct {
	From string `short:"f" help:"Start date (YYYY-MM-DD), inclusive. Defaults to 30 days ago."`
	To   string `short:"t" help:"End date (YYYY-MM-DD), inclusive. Defaults to today."`
	Out  string `short:"o" help:"Output file. Defaults to stdout."`
}

// Run writes the progress history joined with goal titles as CSV.
func (c *ExportCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if c.From != "" {
		day, err := parseDay(c.From)
		if err != nil {
			return err
		}
		start = day
	}
	if c.To != "" {
		day, err := parseDay(c.To)
		if err != nil {
			return err
		}
		end = endOfDay(day)
	}

	var out io.Writer = os.Stdout
	if c.Out != "" {
		file, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Out, err)
		}
		defer file.Close()
		out = file
	}

	count, err := ctx.Export.WriteCSV(out, start, end)
	if err != nil {
		return err
	}
	if c.Out != "" {
		fmt.Printf("Exported %d entries to %s\n", count, c.Out)
	}
	return nil
}
