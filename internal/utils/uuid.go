package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for sandbox service
// requests, tokens and client trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewTraceID returns a fresh identifier used to correlate the log entries
// of a single client call.
func NewTraceID() string {
	return uuid.NewString()
}
