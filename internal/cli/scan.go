package cli

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/cache"
	"github.com/matzehuels/wheeltag/pkg/tags"
	"github.com/matzehuels/wheeltag/pkg/wheels"
)

// scanCacheTTL bounds how long a wheelhouse scan report is reused.
const scanCacheTTL = 24 * time.Hour

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	env     envFlags
	jsonn   bool
	refresh bool
	noCache bool
}

// scanCommand creates the scan command, which checks every wheel in a
// wheelhouse directory against an environment.
func (c *CLI) scanCommand() *cobra.Command {
	var opts scanOpts

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Check every wheel in a wheelhouse directory",
		Long: `Scan a directory tree for .whl files and check each one against an
environment's tag sequence.

A verdict depends only on the filenames found and the tag sequence, so
reports are cached; use --refresh to recompute.

Examples:
  wheeltag scan ./wheelhouse
  wheeltag scan --python pypy3 --json ./dist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, seq, err := opts.env.resolveTags(ctx)
			if err != nil {
				return err
			}

			report, cached, err := c.scanWithCache(ctx, args[0], seq, opts)
			if err != nil {
				return err
			}
			if cached {
				c.Logger.Debugf("Using cached report for %s", args[0])
			}

			if opts.jsonn {
				return json.NewEncoder(os.Stdout).Encode(report)
			}

			printInfo("Scanned %s against %s: %d wheels", report.Dir, StyleHighlight.Render(env.InterpreterTag()), len(report.Results))
			for _, res := range report.Results {
				printResult(res)
			}
			printDetail("%d supported, %d unsupported, %d skipped",
				report.Supported, len(report.Results)-report.Supported-report.Skipped, report.Skipped)
			return nil
		},
	}

	opts.env.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonn, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the report cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache entirely")

	return cmd
}

// scanWithCache runs a directory scan, reusing a cached report when the
// filename list and tag sequence are unchanged.
func (c *CLI) scanWithCache(ctx context.Context, dir string, seq []tags.Tag, opts scanOpts) (*wheels.Report, bool, error) {
	store := c.openScanCache(opts.noCache)
	defer store.Close()

	paths, err := wheels.List(dir)
	if err != nil {
		return nil, false, err
	}
	key := cache.Key("scan",
		cache.Hash([]byte(strings.Join(paths, "\n"))),
		cache.Hash([]byte(strings.Join(tagStrings(seq), "\n"))),
	)

	if !opts.refresh {
		if data, ok, err := store.Get(ctx, key); err == nil && ok {
			var report wheels.Report
			if err := json.Unmarshal(data, &report); err == nil {
				return &report, true, nil
			}
		}
	}

	report, err := wheels.ScanDir(dir, seq)
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(report); err == nil {
		if err := store.Set(ctx, key, data, scanCacheTTL); err != nil {
			c.Logger.Warnf("Caching scan report failed: %v", err)
		}
	}
	return report, false, nil
}

// openScanCache returns the scan report cache, falling back to a no-op
// cache when the cache directory is unavailable.
func (c *CLI) openScanCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var store cache.Cache
		store, err = cache.NewFileCache(dir)
		if err == nil {
			return store
		}
	}
	c.Logger.Warnf("Scan cache disabled: %v", err)
	return cache.NewNullCache()
}
