package app

import (
	"fmt"

	"github.com/spf13/cobra"

	open311 "github.com/MKhiriev/go-open311"
)

// NewCitiesCommand creates the cities command.
func NewCitiesCommand(_ *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities accepted by --city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range open311.Cities() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
