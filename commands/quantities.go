package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/c360studio/siquant/dimension"
	"github.com/spf13/cobra"
)

func newQuantitiesCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "quantities",
		Short: "List named physical quantities",
		Long: `Quantities lists the catalog of named physical quantities with their
dimensionalities. Use --filter to restrict to names containing a
substring.

Examples:
  siquant quantities
  siquant quantities --filter electric`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := dimension.QuantityNames()
			if filter != "" {
				matched := names[:0]
				for _, n := range names {
					if strings.Contains(n, filter) {
						matched = append(matched, n)
					}
				}
				names = matched
			}

			if a.cfg.Output.Format == "json" {
				out := make(map[string]string, len(names))
				for _, n := range names {
					d, err := dimension.ForQuantity(n)
					if err != nil {
						return err
					}
					out[n] = d.Symbol()
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			w := cmd.OutOrStdout()
			for _, n := range names {
				d, err := dimension.ForQuantity(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-45s %s\n", n, d.Symbol())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list quantities whose name contains this substring")
	return cmd
}
