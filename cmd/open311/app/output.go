package app

import (
	"encoding/json"
	"fmt"
	"io"

	open311 "github.com/MKhiriev/go-open311"
)

// printResult writes converted data as indented JSON and anything else as
// the raw body. A non-success status is returned as an error after the
// body is printed.
func printResult(w io.Writer, res *open311.Result) error {
	if res.Converted {
		out, err := json.MarshalIndent(res.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		if _, err = fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	} else {
		if _, err := w.Write(res.Raw); err != nil {
			return err
		}
		if len(res.Raw) > 0 && res.Raw[len(res.Raw)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}

	return res.Err()
}
