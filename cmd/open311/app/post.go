// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	open311 "github.com/MKhiriev/go-open311"
)

// PostOptions holds the fields of a new service request.
type PostOptions struct {
	Name        string
	Address     string
	Description string
	Phone       string
	Email       string
	Lat         string
	Long        string
	Fields      map[string]string
	MediaPath   string
}

// NewPostCommand creates the post command.
func NewPostCommand(opts *GlobalOptions) *cobra.Command {
	po := &PostOptions{}

	cmd := &cobra.Command{
		Use:   "post <code>",
		Short: "Report an issue for a service code",
		Example: `  open311 --city sf --api-key KEY post 001 \
    --name "Zach Williams" --address "85 2nd St" --description "Cans left out"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var media *open311.Media
			if po.MediaPath != "" {
				f, err := os.Open(po.MediaPath)
				if err != nil {
					return fmt.Errorf("error opening media: %w", err)
				}
				defer f.Close()
				media = &open311.Media{FileName: filepath.Base(po.MediaPath), Content: f}
			}

			res, err := c.Post(cmd.Context(), args[0], po.fields(), media)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&po.Name, "name", "", `reporter name as "First Last"`)
	f.StringVar(&po.Address, "address", "", "address of the issue")
	f.StringVar(&po.Description, "description", "", "description of the issue")
	f.StringVar(&po.Phone, "phone", "", "reporter phone number")
	f.StringVar(&po.Email, "email", "", "reporter email")
	f.StringVar(&po.Lat, "lat", "", "latitude of the issue")
	f.StringVar(&po.Long, "long", "", "longitude of the issue")
	f.StringToStringVar(&po.Fields, "field", nil, "extra form field as key=value (e.g. attribute[WHISHETN]=123)")
	f.StringVar(&po.MediaPath, "media", "", "path of a photo to upload")

	return cmd
}

func (o *PostOptions) fields() open311.Params {
	p := open311.Params(o.Fields).Clone()
	set := func(key, value string) {
		if value != "" {
			p[key] = value
		}
	}

	set("name", o.Name)
	set("address", o.Address)
	set("description", o.Description)
	set("phone", o.Phone)
	set("email", o.Email)
	set("lat", o.Lat)
	set("long", o.Long)

	return p
}
