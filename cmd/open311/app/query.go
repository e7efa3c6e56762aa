// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"github.com/spf13/cobra"

	open311 "github.com/MKhiriev/go-open311"
)

// NewDiscoveryCommand creates the discovery command.
func NewDiscoveryCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "discovery [url]",
		Short: "Show the server's discovery document",
		Long: `Show the server's discovery document.

An explicit url, or the --discovery setting, is fetched as is and printed
unconverted. Otherwise discovery.<format> is requested under the endpoint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			res, err := c.Discovery(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

// NewServicesCommand creates the services command.
func NewServicesCommand(opts *GlobalOptions) *cobra.Command {
	var params map[string]string

	cmd := &cobra.Command{
		Use:   "services [code]",
		Short: "List services, or show the definition of one service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			res, err := c.Services(cmd.Context(), firstArg(args), params)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringToStringVar(&params, "param", nil, "extra query parameter as key=value")

	return cmd
}

// RequestsOptions holds the filters of the requests command.
type RequestsOptions struct {
	Status string
	Start  string
	End    string
	Params map[string]string
}

// NewRequestsCommand creates the requests command.
func NewRequestsCommand(opts *GlobalOptions) *cobra.Command {
	ro := &RequestsOptions{}

	cmd := &cobra.Command{
		Use:   "requests [code]",
		Short: "List service requests, optionally for one service code",
		Example: `  # Open requests of service 001 since March 2010
  open311 --city sf requests 001 --status open --start 03-01-2010`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			res, err := c.Requests(cmd.Context(), firstArg(args), ro.params())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&ro.Status, "status", "", `"open" or "closed"`)
	cmd.Flags().StringVar(&ro.Start, "start", "", "earliest request date (MM-DD-YYYY, MM-DD-YY or YYYY-MM-DD)")
	cmd.Flags().StringVar(&ro.End, "end", "", "latest request date (defaults to today when --start is set)")
	cmd.Flags().StringToStringVar(&ro.Params, "param", nil, "extra query parameter as key=value")

	return cmd
}

func (o *RequestsOptions) params() open311.Params {
	p := open311.Params(o.Params).Clone()
	if o.Status != "" {
		p["status"] = o.Status
	}
	if o.Start != "" {
		p["start"] = o.Start
	}
	if o.End != "" {
		p["end"] = o.End
	}
	return p
}

// NewRequestCommand creates the request command.
func NewRequestCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "request <id>",
		Short: "Show a single service request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			res, err := c.Request(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

// NewTokenCommand creates the token command.
func NewTokenCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token <token>",
		Short: "Resolve a token returned by post into a service request id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			res, err := c.Token(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
