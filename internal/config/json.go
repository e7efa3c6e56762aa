package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the --config file.
type StructuredJSONConfig struct {
	Client struct {
		City           string   `json:"city"`
		Endpoint       string   `json:"endpoint"`
		Format         string   `json:"format"`
		Jurisdiction   string   `json:"jurisdiction"`
		APIKey         string   `json:"api_key"`
		Proxy          string   `json:"proxy"`
		Discovery      string   `json:"discovery"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`

	Sandbox struct {
		Address string `json:"address"`
		APIKey  string `json:"api_key"`
	} `json:"sandbox,omitempty"`

	Verbose bool `json:"verbose"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			City:           jsonCfg.Client.City,
			Endpoint:       jsonCfg.Client.Endpoint,
			Format:         jsonCfg.Client.Format,
			Jurisdiction:   jsonCfg.Client.Jurisdiction,
			APIKey:         jsonCfg.Client.APIKey,
			Proxy:          jsonCfg.Client.Proxy,
			Discovery:      jsonCfg.Client.Discovery,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
		Sandbox: Sandbox{
			Address: jsonCfg.Sandbox.Address,
			APIKey:  jsonCfg.Sandbox.APIKey,
		},
		Verbose:      jsonCfg.Verbose,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
