// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import "time"

// Service is a type of issue residents can report.
type Service struct {
	Code        string      `json:"service_code"`
	Name        string      `json:"service_name"`
	Description string      `json:"description"`
	Metadata    bool        `json:"metadata"`
	Type        string      `json:"type"`
	Keywords    string      `json:"keywords"`
	Group       string      `json:"group"`
	Attributes  []Attribute `json:"-"`
}

// Attribute is an extra field of a service with metadata.
type Attribute struct {
	Variable            bool             `json:"variable"`
	Code                string           `json:"code"`
	Datatype            string           `json:"datatype"`
	Required            bool             `json:"required"`
	DatatypeDescription string           `json:"datatype_description"`
	Order               int              `json:"order"`
	Description         string           `json:"description"`
	Values              []AttributeValue `json:"values,omitempty"`
}

// AttributeValue is one choice of a singlevaluelist or multivaluelist attribute.
type AttributeValue struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ServiceDefinition describes the attributes of a single service.
type ServiceDefinition struct {
	ServiceCode string      `json:"service_code"`
	Attributes  []Attribute `json:"attributes"`
}

// Request statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// ServiceRequest is a reported issue.
type ServiceRequest struct {
	ID                string    `json:"service_request_id"`
	Status            string    `json:"status"`
	StatusNotes       string    `json:"status_notes"`
	ServiceName       string    `json:"service_name"`
	ServiceCode       string    `json:"service_code"`
	Description       string    `json:"description"`
	AgencyResponsible string    `json:"agency_responsible"`
	ServiceNotice     string    `json:"service_notice"`
	RequestedAt       time.Time `json:"requested_datetime"`
	UpdatedAt         time.Time `json:"updated_datetime"`
	Address           string    `json:"address"`
	Lat               string    `json:"lat"`
	Long              string    `json:"long"`
	MediaURL          string    `json:"media_url"`

	token string
	email string
	phone string
	name  string
}

// Media is a file uploaded with a service request.
type Media struct {
	FileName string
	Content  []byte
}

// NewRequest holds the fields of a POST /requests call.
type NewRequest struct {
	ServiceCode string
	Lat         string
	Long        string
	Address     string
	AddressID   string
	Description string
	MediaURL    string
	Media       *Media
}

// Created is the response item of a successful POST /requests call.
type Created struct {
	ID            string `json:"service_request_id"`
	Token         string `json:"token"`
	ServiceNotice string `json:"service_notice"`
}

// TokenInfo maps a token onto its service request.
type TokenInfo struct {
	ID    string `json:"service_request_id"`
	Token string `json:"token"`
}

// Filter restricts a request listing. Zero fields match everything.
type Filter struct {
	IDs          []string
	ServiceCodes []string
	Status       string
	Start        time.Time
	End          time.Time
}

// Discovery is the server's discovery document.
type Discovery struct {
	Changeset  string     `json:"changeset"`
	Contact    string     `json:"contact"`
	KeyService string     `json:"key_service"`
	Endpoints  []Endpoint `json:"endpoints"`
}

// Endpoint is one API endpoint announced by discovery.
type Endpoint struct {
	Specification string   `json:"specification"`
	URL           string   `json:"url"`
	Changeset     string   `json:"changeset"`
	Type          string   `json:"type"`
	Formats       []string `json:"formats"`
}

// APIError is one item of an Open311 error response.
type APIError struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}
