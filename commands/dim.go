package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/c360studio/siquant/dimension"
	"github.com/spf13/cobra"
)

func newDimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dim <quantity-or-expression>",
		Short: "Show the dimensionality of a quantity name or expression",
		Long: `Dim resolves either a named physical quantity or a dimensionality
expression over the base symbols L, M, T, I, Θ, N, J and prints the
canonical dimensionality.

Examples:
  siquant dim pressure
  siquant dim electric charge
  siquant dim "M*L/T^2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			d, err := dimension.ForQuantity(text)
			if err != nil {
				var parseErr error
				d, parseErr = dimension.Parse(text)
				if parseErr != nil {
					return parseErr
				}
			}

			if a.cfg.Output.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
					"input":          text,
					"dimensionality": d.Symbol(),
				})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Symbol())
			return err
		},
	}
}
