package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

// parseCommand creates the parse command, which expands a tag string or a
// wheel filename into the concrete tags it declares.
func (c *CLI) parseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <tag-or-wheel>",
		Short: "Expand a tag string or wheel filename into concrete tags",
		Long: `Expand a compatibility tag string or a wheel filename into the concrete
tags it declares.

Compressed tag sets with dot-separated alternatives are expanded into
their cross product.

Examples:
  wheeltag parse cp37-cp37m-manylinux1_x86_64
  wheeltag parse py2.py3-none-any
  wheeltag parse requests-2.22.0-py2.py3-none-any.whl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]

			var (
				set tags.Set
				err error
			)
			if strings.HasSuffix(arg, ".whl") {
				set, err = tags.ParseWheelFilename(arg)
			} else {
				set, err = tags.ParseTag(arg)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(set.Strings())
			}
			printInfo("%s expands to %d tags", StyleHighlight.Render(arg), len(set))
			for _, t := range set.Sorted() {
				fmt.Println("  " + t.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print tags as a JSON array")

	return cmd
}
