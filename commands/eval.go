package commands

import (
	"github.com/c360studio/siquant/scalar"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a quantity expression",
		Long: `Eval parses and evaluates a physical quantity expression. Numbers may
carry unit suffixes, physical constants are available by symbol, and
all arithmetic is dimensionally checked.

Examples:
  siquant eval "100 km / 2 h"
  siquant eval "0.5 * 2 kg * (10 m/s)^2"
  siquant eval "h_P * c_0 / 500 nm"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scalar.Parse(args[0])
			if err != nil {
				return err
			}
			return a.printScalar(cmd.OutOrStdout(), s)
		},
	}
}
