package main

import (
	"os"

	"github.com/MKhiriev/go-open311/cmd/open311/app"
	"github.com/MKhiriev/go-open311/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := app.NewOpen311Command(info).Execute(); err != nil {
		os.Exit(1)
	}
}
