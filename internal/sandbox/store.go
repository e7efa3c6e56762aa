// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-open311/internal/utils"
)

// Store keeps services and service requests in memory. It is safe for
// concurrent use.
type Store struct {
	mu sync.RWMutex

	services []Service
	requests map[string]*ServiceRequest
	tokens   map[string]string
	media    map[string]Media

	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewStore returns a store offering services. A nil now uses time.Now.
func NewStore(services []Service, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		services: slices.Clone(services),
		requests: make(map[string]*ServiceRequest),
		tokens:   make(map[string]string),
		media:    make(map[string]Media),
		ids:      utils.NewUUIDGenerator(),
		now:      now,
	}
}

// DefaultServices is the catalogue served by a fresh sandbox.
func DefaultServices() []Service {
	return []Service{
		{
			Code:        "001",
			Name:        "Cans left out 24x7",
			Description: "Garbage or recycling cans that have been left out for more than 24 hours after collection.",
			Type:        "realtime",
			Keywords:    "lorem, ipsum, dolor",
			Group:       "sanitation",
		},
		{
			Code:        "002",
			Name:        "Construction plate shifted",
			Description: "Metal construction plate covering the street or sidewalk has been moved.",
			Metadata:    true,
			Type:        "realtime",
			Keywords:    "lorem, ipsum, dolor",
			Group:       "street",
			Attributes: []Attribute{
				{
					Variable:            true,
					Code:                "WHISHETN",
					Datatype:            "singlevaluelist",
					Required:            true,
					DatatypeDescription: "",
					Order:               1,
					Description:         "What is the ticket/tag/DL number?",
					Values: []AttributeValue{
						{Key: "123", Name: "Ford"},
						{Key: "124", Name: "Chrysler"},
					},
				},
			},
		},
		{
			Code:        "003",
			Name:        "Curb or curb ramp defect",
			Description: "Sidewalk curb or ramp has problems such as cracking, missing pieces, holes, and/or chipped curb.",
			Type:        "realtime",
			Keywords:    "lorem, ipsum, dolor",
			Group:       "street",
		},
	}
}

// Services returns every service.
func (s *Store) Services() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.services)
}

// Service returns the service with the given code.
func (s *Store) Service(code string) (Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.service(code)
}

func (s *Store) service(code string) (Service, error) {
	i := slices.IndexFunc(s.services, func(svc Service) bool { return svc.Code == code })
	if i < 0 {
		return Service{}, fmt.Errorf("%w: %s", ErrServiceNotFound, code)
	}
	return s.services[i], nil
}

// Definition returns the attribute definition of a service.
func (s *Store) Definition(code string) (ServiceDefinition, error) {
	svc, err := s.Service(code)
	if err != nil {
		return ServiceDefinition{}, err
	}

	attrs := slices.Clone(svc.Attributes)
	if attrs == nil {
		attrs = []Attribute{}
	}
	return ServiceDefinition{ServiceCode: svc.Code, Attributes: attrs}, nil
}

// Create validates in and stores a new open service request.
func (s *Store) Create(in NewRequest) (Created, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.service(in.ServiceCode)
	if err != nil {
		return Created{}, fmt.Errorf("%w: %q", ErrInvalidServiceCode, in.ServiceCode)
	}
	if (in.Lat == "" || in.Long == "") && in.Address == "" && in.AddressID == "" {
		return Created{}, ErrNoLocation
	}

	now := s.now().UTC().Truncate(time.Second)
	req := &ServiceRequest{
		ID:                s.ids.Generate(),
		Status:            StatusOpen,
		ServiceName:       svc.Name,
		ServiceCode:       svc.Code,
		Description:       in.Description,
		AgencyResponsible: "Sandbox Department of Public Works",
		ServiceNotice:     "This request was filed with a local sandbox and will not be handled.",
		RequestedAt:       now,
		UpdatedAt:         now,
		Address:           in.Address,
		Lat:               in.Lat,
		Long:              in.Long,
		MediaURL:          in.MediaURL,
		token:             s.ids.Generate(),
	}
	if in.Media != nil {
		s.media[req.ID] = *in.Media
		req.MediaURL = mediaPath(req.ID)
	}

	s.requests[req.ID] = req
	s.tokens[req.token] = req.ID

	return Created{ID: req.ID, Token: req.token, ServiceNotice: req.ServiceNotice}, nil
}

// Request returns a single service request.
func (s *Store) Request(id string) (ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return ServiceRequest{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	return *req, nil
}

// Requests lists the service requests matching f, oldest first.
func (s *Store) Requests(f Filter) []ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ServiceRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if f.match(req) {
			out = append(out, *req)
		}
	}

	slices.SortFunc(out, func(a, b ServiceRequest) int {
		if c := a.RequestedAt.Compare(b.RequestedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Token resolves a token returned by Create.
func (s *Store) Token(token string) (TokenInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return TokenInfo{}, fmt.Errorf("%w: %s", ErrTokenNotFound, token)
	}
	return TokenInfo{ID: id, Token: token}, nil
}

// SetStatus changes the status of a service request.
func (s *Store) SetStatus(id, status, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	req.Status = status
	req.StatusNotes = notes
	req.UpdatedAt = s.now().UTC().Truncate(time.Second)
	return nil
}

// Media returns the file uploaded with a service request.
func (s *Store) Media(id string) (Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return Media{}, fmt.Errorf("%w: %s", ErrMediaNotFound, id)
	}
	return m, nil
}

func (f Filter) match(req *ServiceRequest) bool {
	if len(f.IDs) > 0 && !slices.Contains(f.IDs, req.ID) {
		return false
	}
	if len(f.ServiceCodes) > 0 && !slices.Contains(f.ServiceCodes, req.ServiceCode) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, req.Status) {
		return false
	}
	if !f.Start.IsZero() && req.RequestedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && req.RequestedAt.After(f.End) {
		return false
	}
	return true
}

func mediaPath(id string) string {
	return "media/" + id
}
