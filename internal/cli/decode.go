package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permindex"
	"github.com/katalvlaran/permindex/permutation"
)

// decodeCommand creates the "decode" command: permutation → ordinal.
func (c *CLI) decodeCommand() *cobra.Command {
	var unchecked bool
	cmd := &cobra.Command{
		Use:   "decode <permutation>...",
		Short: "Print the ordinal of each permutation",
		Example: `  permindex decode 2,0,3,1      # 10
  permindex decode "[2 0 3 1 4 5]"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			for _, arg := range args {
				p, err := permutation.Parse(arg)
				if err != nil {
					return err
				}
				if unchecked {
					fmt.Fprintln(out, permindex.NumberUnchecked(p))
					continue
				}
				n, err := permindex.Number(p)
				if err != nil {
					return fmt.Errorf("decode %s: %w", arg, err)
				}
				logger.Debug("decode", "permutation", p, "ordinal", n)
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "skip validation and overflow checks")
	return cmd
}
