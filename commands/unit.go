package commands

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/siquant/unit"
	"github.com/spf13/cobra"
)

type unitResult struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name,omitempty"`
	Plural         string  `json:"plural,omitempty"`
	Dimensionality string  `json:"dimensionality"`
	Multiplier     float64 `json:"multiplier"`
}

func newUnitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unit <expression>",
		Short: "Resolve a unit expression to its canonical form",
		Long: `Unit parses a unit symbol or expression and prints the interned unit's
canonical symbol, name, dimensionality, and coherent multiplier.

Examples:
  siquant unit km
  siquant unit "kg*m/s^2"
  siquant unit "J/(kg*K)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, multiplier, err := unit.Parse(args[0])
			if err != nil {
				return err
			}

			if a.cfg.Output.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(unitResult{
					Symbol:         u.Symbol(),
					Name:           u.Name(),
					Plural:         u.Plural(),
					Dimensionality: u.Dimensionality().Symbol(),
					Multiplier:     multiplier,
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "symbol:         %s\n", u.Symbol())
			if name := u.Name(); name != u.Symbol() {
				fmt.Fprintf(w, "name:           %s\n", name)
				fmt.Fprintf(w, "plural:         %s\n", u.Plural())
			}
			fmt.Fprintf(w, "dimensionality: %s\n", u.Dimensionality().Symbol())
			fmt.Fprintf(w, "multiplier:     %g\n", multiplier)
			return nil
		},
	}
}
