// Package utils provides general-purpose helpers shared by the client, the
// sandbox server and the CLI: request path building, Open311 date handling,
// identifier generation, HTTP response writing and HTTP client construction.
package utils
