package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permindex"
)

// shuffleCommand creates the "shuffle" command: seed → permutation.
// With positional arguments it shuffles the arguments themselves.
func (c *CLI) shuffleCommand() *cobra.Command {
	var (
		seed   uint64
		length int
	)
	cmd := &cobra.Command{
		Use:   "shuffle [item]...",
		Short: "Deterministically shuffle n positions (or the given items) from a seed",
		Example: `  permindex shuffle --seed 42 --length 8
  permindex shuffle --seed 42 alice bob carol dave`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			logger.Debug("shuffle", "seed", seed, "ordinal", permindex.SeedOrdinal(seed))

			if len(args) > 0 {
				items, err := permindex.ShuffleSlice(args, seed)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(items, " "))
				return nil
			}
			if !cmd.Flags().Changed("length") {
				return errors.New("shuffle: --length or items required")
			}
			p, err := permindex.Shuffle(seed, length)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, c.format(p))
			return nil
		},
	}
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "shuffle seed")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "number of positions to shuffle")
	return cmd
}
