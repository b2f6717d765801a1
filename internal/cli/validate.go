package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Denizche/divscheme/pkg/errors"
	"github.com/Denizche/divscheme/pkg/gost"
	schemeio "github.com/Denizche/divscheme/pkg/io"
)

// validateCommand creates the validate command for checking scheme files.
func (c *CLI) validateCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate [scheme.json]",
		Short: "Validate a division scheme against GOST 2.701",
		Long: `Validate a division scheme against GOST 2.701.

The validate command reads a scheme file and runs every structural check:
designation formats, position uniqueness, hierarchy integrity, title block
fields, and sheet configuration. All violations are reported at once.

The command exits non-zero when the scheme has blocking errors; warnings
alone do not fail it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}

// runValidate loads the scheme, builds the report, and prints it.
func (c *CLI) runValidate(path string, jsonOut bool) error {
	s, err := schemeio.ImportScheme(path)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	report := gost.NewValidator().Report(s)
	p.done("Validated scheme")

	if jsonOut {
		if err := schemeio.WriteJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if !report.Valid {
		return errors.New(errors.ErrCodeInvalidScheme, "scheme has %d validation errors", report.ErrorCount)
	}
	return nil
}
