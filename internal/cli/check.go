package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/wheels"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	env   envFlags
	jsonn bool
}

// checkCommand creates the check command, which reports whether wheel files
// are installable in an environment.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <wheel>...",
		Short: "Report whether wheel files are installable in an environment",
		Long: `Check one or more wheel filenames against an environment's tag sequence.

A wheel is installable when at least one of its declared tags appears in
the sequence; the reported rank is the index of the best match, so lower
ranks mean a more specific build.

Exits non-zero if any wheel is unsupported.

Examples:
  wheeltag check requests-2.22.0-py2.py3-none-any.whl
  wheeltag check --python pypy3 numpy-1.17.0-cp37-cp37m-manylinux1_x86_64.whl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := opts.env.resolveTags(cmd.Context())
			if err != nil {
				return err
			}

			results := make([]wheels.Result, 0, len(args))
			failed := 0
			for _, name := range args {
				res := wheels.Check(seq, name)
				results = append(results, res)
				if !res.Supported {
					failed++
				}
			}

			if opts.jsonn {
				if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					printResult(res)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d wheels unsupported", failed, len(args))
			}
			return nil
		},
	}

	opts.env.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonn, "json", false, "print results as JSON")

	return cmd
}

// printResult renders one check verdict for the terminal.
func printResult(res wheels.Result) {
	switch {
	case res.Error != "":
		printError("%s: %s", res.Name, res.Error)
	case res.Supported:
		printSuccess("%s matches %s (rank %d)", res.Name, StyleHighlight.Render(res.Match), res.Rank)
	default:
		printError("%s: no compatible tag", res.Name)
	}
}
