package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-open311/models"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
