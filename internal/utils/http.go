package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/beevik/etree"
)

var errNoRootElement = errors.New("document has no root element")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, []map[string]string{{"service_code": "001"}}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteXML serializes doc and writes it to the HTTP response with the
// "text/xml" content type and the given status code. A document without a
// root element is rejected with 500 Internal Server Error.
func WriteXML(w http.ResponseWriter, doc *etree.Document, statusCode int) (int, error) {
	if doc.Root() == nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", errNoRootElement)
	}

	xmlData, err := doc.WriteToBytes()
	if err != nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", err)
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(xmlData)
}
