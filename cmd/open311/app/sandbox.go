// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-open311/internal/config"
	"github.com/MKhiriev/go-open311/internal/logger"
	"github.com/MKhiriev/go-open311/internal/sandbox"
)

// NewSandboxCommand creates the sandbox command.
func NewSandboxCommand(opts *GlobalOptions) *cobra.Command {
	var addr config.NetAddress

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run a local in-memory Open311 server",
		Long: `Run a local in-memory Open311 server.

Point the other commands at it with --endpoint http://<address>/. Reported
issues are kept in memory until the server stops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr.String() != "" {
				opts.flags.Sandbox.Address = addr.String()
			}

			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			log := logger.NewLogger("open311-sandbox")
			store := sandbox.NewStore(sandbox.DefaultServices(), nil)
			h := sandbox.NewHandler(store, sandbox.Config{APIKey: cfg.Sandbox.APIKey}, log)

			fmt.Fprintf(cmd.OutOrStdout(), "Open311 sandbox listening on http://%s/\n", cfg.Sandbox.Address)
			return sandbox.NewServer(cfg.Sandbox.Address, h.Init(), log).Run(cmd.Context())
		},
	}

	cmd.Flags().Var(&addr, "address", "listen address as host:port (default "+config.DefaultSandboxAddress+")")
	cmd.Flags().StringVar(&opts.flags.Sandbox.APIKey, "sandbox-key", "", "api_key required on POST requests")

	return cmd
}
