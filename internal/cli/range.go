package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permindex"
)

// rangeCommand creates the "range" command: ascending enumeration.
func (c *CLI) rangeCommand() *cobra.Command {
	var (
		start  string
		count  uint64
		length int
	)
	cmd := &cobra.Command{
		Use:     "range",
		Short:   "Enumerate consecutive permutations",
		Example: `  permindex range --start 7 --count 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseOrdinal(start)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = c.Config.Length
			}
			out := cmd.OutOrStdout()
			for n, p := range permindex.Range(from, count) {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				q, err := pad(p, length)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", n, c.format(q))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "0", "first ordinal")
	cmd.Flags().Uint64VarP(&count, "count", "n", 10, "number of permutations")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "pad permutations to this length with fixed points (0 = minimal)")
	return cmd
}
