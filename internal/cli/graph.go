package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/taggraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	env      envFlags
	output   string
	format   string
	detailed bool
	limit    int
}

// graphCommand creates the graph command, which renders the tag priority
// chain as DOT or SVG.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the tag priority chain as DOT or SVG",
		Long: `Render the environment's tag sequence as a priority chain diagram.

Each tag is a node; edges follow resolution order from the most specific
tag down to the universal fallback. Binary tags are highlighted.

Examples:
  wheeltag graph -o tags.svg
  wheeltag graph --format dot --limit 20
  wheeltag graph --python pypy3 --detailed -o pypy.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := opts.env.resolveTags(cmd.Context())
			if err != nil {
				return err
			}

			format := opts.format
			if format == "" {
				format = formatFromPath(opts.output)
			}

			dot := taggraph.ToDOT(seq, taggraph.Options{Detailed: opts.detailed, Limit: opts.limit})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				c.Logger.Debugf("Rendering %d tags through graphviz", len(seq))
				data, err = taggraph.RenderSVG(dot)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			if opts.output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote %s (%s, %d tags)", opts.output, format, maxShown(opts.limit, len(seq)))
			return nil
		},
	}

	opts.env.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: dot or svg (inferred from -o, default dot)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include rank and components in node labels")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "draw at most n tags (0 = all)")

	return cmd
}

// formatFromPath infers the output format from a file extension.
func formatFromPath(path string) string {
	if strings.HasSuffix(path, ".svg") {
		return "svg"
	}
	return "dot"
}

// maxShown returns how many tags end up in the diagram given the limit.
func maxShown(limit, total int) int {
	if limit > 0 && limit < total {
		return limit
	}
	return total
}
