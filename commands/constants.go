package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/c360studio/siquant/scalar"
	"github.com/spf13/cobra"
)

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the built-in physical constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scalar.ConstantNames()
			prec := a.cfg.Output.Precision

			if a.cfg.Output.Format == "json" {
				out := make(map[string]scalarResult, len(names))
				for _, n := range names {
					s, err := scalar.Constant(n)
					if err != nil {
						return err
					}
					out[n] = scalarResult{
						Value:          s.Value(),
						Unit:           s.UnitSymbol(),
						Dimensionality: s.Dimensionality().Symbol(),
					}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			w := cmd.OutOrStdout()
			for _, n := range names {
				s, err := scalar.Constant(n)
				if err != nil {
					return err
				}
				value := strconv.FormatFloat(s.Value(), 'g', prec, 64)
				if sym := s.UnitSymbol(); sym != "1" {
					fmt.Fprintf(w, "%-8s %s %s\n", n, value, sym)
				} else {
					fmt.Fprintf(w, "%-8s %s\n", n, value)
				}
			}
			return nil
		},
	}
}
