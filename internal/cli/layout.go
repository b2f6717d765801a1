package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Denizche/divscheme/pkg/errors"
	schemeio "github.com/Denizche/divscheme/pkg/io"
	"github.com/Denizche/divscheme/pkg/pipeline"
)

// layoutCommand creates the layout command for computing placement coordinates.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		config  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [scheme.json]",
		Short: "Compute placement coordinates for a division scheme",
		Long: `Compute placement coordinates for a division scheme.

The layout command validates the scheme and, when it passes, computes a
millimeter coordinate for every component according to the scheme's layout
type (tree, vertical, or horizontal). The output is a layout.json file with
the positions, sheet dimensions, advisory warnings, and the bill of
materials when the scheme requests one.

Coordinates use a top-left origin with y increasing downward; renderers with
a bottom-left origin must invert the axis.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, config, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&config, "config", "", "TOML file overriding the layout constants")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout executes the validate → layout pipeline for one scheme file.
func (c *CLI) runLayout(ctx context.Context, input, output, config string, noCache bool) error {
	s, err := schemeio.ImportScheme(input)
	if err != nil {
		return err
	}

	constants, err := loadConstants(config)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, c.Logger)

	p := newProgress(c.Logger)
	res, err := runner.Run(ctx, s, pipeline.Options{Constants: constants, NoCache: noCache})
	if err != nil {
		return err
	}

	if !res.Report.Valid {
		printReport(res.Report)
		return errors.New(errors.ErrCodeInvalidScheme, "scheme has %d validation errors", res.Report.ErrorCount)
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + ".layout.json"
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := schemeio.ExportJSON(output, res); err != nil {
		return err
	}

	if res.Cached {
		p.done(fmt.Sprintf("Placed %d components (cached)", len(res.Positions)))
	} else {
		p.done(fmt.Sprintf("Placed %d components", len(res.Positions)))
	}

	printSuccess("Layout computed: %s, %s %s, %.0fx%.0f mm",
		res.Report.LayoutType, res.Report.Format, s.Orientation, res.PageWidth, res.PageHeight)
	for _, w := range res.LayoutWarnings {
		printWarning("%s", w)
	}
	for _, w := range res.BoundsWarnings {
		printWarning("%s", w)
	}
	for _, w := range res.Report.Warnings {
		printDetail("%s", w)
	}
	printFile(output)

	return nil
}
