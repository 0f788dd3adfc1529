package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

// tagsOpts holds the command-line flags for the tags command.
type tagsOpts struct {
	env   envFlags
	jsonn bool
	limit int
}

// tagsCommand creates the tags command, which prints the ordered
// compatibility tag sequence for an environment.
func (c *CLI) tagsCommand() *cobra.Command {
	var opts tagsOpts

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print the ordered compatibility tag sequence for an environment",
		Long: `Print the compatibility tags an environment accepts, most specific first.

The last tag is always the universal py{major}0-none-any fallback, so any
pure-Python wheel matches somewhere in the sequence.

Examples:
  wheeltag tags                          # Interrogate the local python3
  wheeltag tags --python pypy3           # Interrogate another interpreter
  wheeltag tags --env-file cp37.toml     # Use a TOML descriptor
  wheeltag tags --json                   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, seq, err := opts.env.resolveTags(cmd.Context())
			if err != nil {
				return err
			}
			c.Logger.Debugf("Computed %d tags for %s", len(seq), env.InterpreterTag())

			shown := seq
			if opts.limit > 0 && opts.limit < len(shown) {
				shown = shown[:opts.limit]
			}

			if opts.jsonn {
				return json.NewEncoder(os.Stdout).Encode(tagStrings(shown))
			}

			printKeyValue("Interpreter", env.InterpreterTag())
			printKeyValue("System", fmt.Sprintf("%s/%s", env.OS, env.Arch))
			printKeyValue("Tags", fmt.Sprintf("%d", len(seq)))
			for i, t := range shown {
				fmt.Printf("%s %s\n", styleRank.Render(fmt.Sprintf("%4d", i)), t.String())
			}
			if len(shown) < len(seq) {
				printDetail("... %d more tags", len(seq)-len(shown))
			}
			return nil
		},
	}

	opts.env.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonn, "json", false, "print tags as a JSON array")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "show at most n tags (0 = all)")

	return cmd
}

// tagStrings renders a tag sequence as strings, preserving order.
func tagStrings(seq []tags.Tag) []string {
	out := make([]string, len(seq))
	for i, t := range seq {
		out[i] = t.String()
	}
	return out
}
