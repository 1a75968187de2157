package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permindex/factoradic"
)

// encodeCommand creates the "encode" command: ordinal → permutation.
func (c *CLI) encodeCommand() *cobra.Command {
	var (
		length     int
		showDigits bool
	)
	cmd := &cobra.Command{
		Use:   "encode <ordinal>...",
		Short: "Print the permutation for each ordinal",
		Example: `  permindex encode 10          # [2 0 3 1]
  permindex encode --length 6 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if !cmd.Flags().Changed("length") {
				length = c.Config.Length
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := parseOrdinal(arg)
				if err != nil {
					return err
				}
				v := factoradic.New(n)
				logger.Debug("encode", "ordinal", n, "digits", v)
				p, err := pad(v.Permutation(), length)
				if err != nil {
					return err
				}
				if showDigits {
					fmt.Fprintf(out, "%s\t%s\n", c.format(p), v)
					continue
				}
				fmt.Fprintln(out, c.format(p))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "pad permutations to this length with fixed points (0 = minimal)")
	cmd.Flags().BoolVar(&showDigits, "digits", false, "also print the factorial-base digits")
	return cmd
}
