// Package cli implements the divscheme command-line interface.
//
// This package provides commands for validating division schemes against
// GOST 2.701, computing placement coordinates for their components, serving
// both operations over HTTP, and managing the local layout cache. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - validate: Check a scheme file and print the full validation report
//   - layout: Validate a scheme and compute placement coordinates
//   - serve: Run the HTTP API
//   - cache: Manage the local layout result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Denizche/divscheme/pkg/buildinfo"
	"github.com/Denizche/divscheme/pkg/cache"
	"github.com/Denizche/divscheme/pkg/layout"
)

// appName is the application name used for directories and display.
const appName = "divscheme"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Divscheme validates and lays out product division schemes",
		Long:         `Divscheme is a CLI tool for checking product division schemes against GOST 2.701 and computing placement coordinates for their components on a drawing sheet.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheDir returns the local layout cache directory.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName, "layouts"), nil
}

// newCache builds the local cache for CLI runs: a file cache under the user
// cache directory, or a null cache when caching is disabled.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// loadConstants resolves the layout constants for a run: defaults, or the
// TOML file given with --config.
func loadConstants(configPath string) (layout.Constants, error) {
	if configPath == "" {
		return layout.DefaultConstants(), nil
	}
	return layout.LoadConstants(configPath)
}
