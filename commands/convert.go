package commands

import (
	"github.com/c360studio/siquant/scalar"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <expression> <unit>",
		Short: "Evaluate an expression and express it in another unit",
		Long: `Convert evaluates a quantity expression and rescales the result into the
target unit. The target must be dimensionally equivalent to the result.

Examples:
  siquant convert "100 km/h" "m/s"
  siquant convert "1 eV" "J"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scalar.Parse(args[0])
			if err != nil {
				return err
			}
			converted, err := s.ConvertTo(args[1])
			if err != nil {
				return err
			}
			return a.printScalar(cmd.OutOrStdout(), converted)
		},
	}
}
