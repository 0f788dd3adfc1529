// Package cli implements the wheeltag command-line interface.
//
// This package provides commands for computing the compatibility tag
// sequence of an environment, parsing tags and wheel filenames, checking
// wheels against an environment, and serving the same operations over HTTP.
// The CLI is built using cobra with logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - tags: Print the ordered compatibility tag sequence for an environment
//   - parse: Expand a tag string or wheel filename into concrete tags
//   - check: Report whether wheel files are installable in an environment
//   - scan: Check every wheel in a wheelhouse directory
//   - browse: Interactively browse the tag sequence
//   - graph: Render the tag priority chain as DOT or SVG
//   - serve: Expose tags/parse/check as an HTTP API
//   - cache: Manage the scan result cache
//
// # Environments
//
// Commands that need an environment accept --env-file (a TOML descriptor)
// or --python (an interpreter to interrogate); by default the local
// "python3" is interrogated.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "wheeltag"

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
		Short:        "Wheeltag computes and parses wheel compatibility tags",
		Long:         `Wheeltag computes the ordered PEP 425 compatibility tag sequence a Python environment accepts, parses the tags a wheel file declares, and reports whether the two intersect.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.tagsCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheDir returns the cache directory for scan results.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
