// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the open311 command-line tool.
//
// Every command shares the persistent flags of the root command. Flag values
// are merged with OPEN311_* environment variables and an optional JSON file
// (--config) by internal/config; the first non-empty source wins.
package app

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/cobra"

	open311 "github.com/MKhiriev/go-open311"
	"github.com/MKhiriev/go-open311/internal/config"
	"github.com/MKhiriev/go-open311/internal/logger"
	"github.com/MKhiriev/go-open311/internal/registry"
	"github.com/MKhiriev/go-open311/models"
)

const (
	cliName        = "open311"
	cliDescription = "open311 - query and report civic issues through Open311 GeoReport v2 servers"
)

// GlobalOptions holds the values of the persistent flags.
type GlobalOptions struct {
	flags config.StructuredConfig
}

// NewOpen311Command creates the root command with all subcommands.
func NewOpen311Command(info models.AppBuildInfo) *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `open311 talks to municipal Open311 GeoReport v2 servers.

Select a server with --city (see "open311 cities") or --endpoint. Responses
are decoded and printed as indented JSON whatever the server format is.`,
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.flags.Client.City, "city", "", "city from the built-in registry")
	f.StringVar(&opts.flags.Client.Endpoint, "endpoint", "", "Open311 endpoint URL (overrides the city)")
	f.StringVar(&opts.flags.Client.Format, "format", "", `response format, "json" or "xml"`)
	f.StringVar(&opts.flags.Client.Jurisdiction, "jurisdiction", "", "jurisdiction_id sent with every request")
	f.StringVar(&opts.flags.Client.APIKey, "api-key", "", "API key sent with POST requests")
	f.StringVar(&opts.flags.Client.Proxy, "proxy", "", "HTTP proxy URL")
	f.StringVar(&opts.flags.Client.Discovery, "discovery", "", "absolute discovery document URL")
	f.DurationVar(&opts.flags.Client.RequestTimeout, "timeout", 0, "request timeout (default 30s)")
	f.StringVar(&opts.flags.JSONFilePath, "config", "", "path to a JSON configuration file")
	f.BoolVarP(&opts.flags.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(
		NewCitiesCommand(opts),
		NewDiscoveryCommand(opts),
		NewServicesCommand(opts),
		NewRequestsCommand(opts),
		NewRequestCommand(opts),
		NewTokenCommand(opts),
		NewPostCommand(opts),
		NewSandboxCommand(opts),
		NewVersionCommand(info),
	)

	return cmd
}

// load merges flags, environment and the config file.
func (o *GlobalOptions) load(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(&o.flags)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.NewClientLogger(cliName, cmd.ErrOrStderr(), cfg.Verbose), nil
}

// client builds an Open311 client from the merged configuration. Explicit
// settings take precedence over those of the selected city.
func (o *GlobalOptions) client(cmd *cobra.Command) (*open311.Client, error) {
	cfg, log, err := o.load(cmd)
	if err != nil {
		return nil, err
	}

	settings := cfg.Client.Settings()
	if cfg.Client.City != "" {
		city, err := registry.Resolve(cfg.Client.City)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(&settings, city.Settings()); err != nil {
			return nil, fmt.Errorf("error merging city settings: %w", err)
		}
	}

	log.Debug().
		Str("endpoint", settings.Endpoint).
		Str("format", settings.Format).
		Msg("open311 client configured")

	return open311.New(settings,
		open311.WithTimeout(cfg.Client.RequestTimeout),
		open311.WithLogger(log.Logger),
	)
}
