// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-open311/internal/logger"
)

// maxUploadMemory bounds the part of a multipart POST kept in memory.
const maxUploadMemory = 10 << 20

var errInvalidForm = errors.New("invalid form data")

func (h *Handler) discovery(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, Discovery{
		Changeset:  h.changeset,
		Contact:    "You can email or call for assistance: sandbox@localhost",
		KeyService: "Any api_key is accepted unless the sandbox is started with one.",
		Endpoints: []Endpoint{{
			Specification: "http://wiki.open311.org/GeoReport_v2",
			URL:           baseURL(r),
			Changeset:     h.changeset,
			Type:          "test",
			Formats:       []string{"text/xml", "application/json"},
		}},
	})
}

func (h *Handler) services(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, serviceList(h.store.Services()))
}

func (h *Handler) serviceDefinition(w http.ResponseWriter, r *http.Request) {
	def, err := h.store.Definition(chi.URLParam(r, "code"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, def)
}

func (h *Handler) requests(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, withMediaURLs(r, h.store.Requests(filter)))
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	req, err := h.store.Request(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, withMediaURLs(r, []ServiceRequest{req}))
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.Token(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, tokenList{info})
}

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderError(w, r, fmt.Errorf("%w: %w", errInvalidForm, err))
		return
	}

	if h.cfg.APIKey != "" && r.PostForm.Get("api_key") != h.cfg.APIKey {
		h.renderError(w, r, ErrInvalidAPIKey)
		return
	}

	in := NewRequest{
		ServiceCode: r.PostForm.Get("service_code"),
		Lat:         r.PostForm.Get("lat"),
		Long:        r.PostForm.Get("long"),
		Address:     r.PostForm.Get("address_string"),
		AddressID:   r.PostForm.Get("address_id"),
		Description: r.PostForm.Get("description"),
		MediaURL:    r.PostForm.Get("media_url"),
	}

	if r.MultipartForm != nil {
		media, err := readMedia(r)
		if err != nil {
			h.renderError(w, r, fmt.Errorf("%w: %w", errInvalidForm, err))
			return
		}
		in.Media = media
	}

	created, err := h.store.Create(in)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Str("service_request_id", created.ID).Str("service_code", in.ServiceCode).Msg("service request created")
	h.render(w, r, http.StatusCreated, createdList{created})
}

func (h *Handler) media(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.Media(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(m.Content))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": m.FileName}))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(m.Content); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing media")
	}
}

func readMedia(r *http.Request) (*Media, error) {
	file, header, err := r.FormFile("media")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &Media{FileName: header.Filename, Content: content}, nil
}

func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	f := Filter{
		IDs:          splitList(q.Get("service_request_id")),
		ServiceCodes: splitList(q.Get("service_code")),
		Status:       q.Get("status"),
	}

	var err error
	if f.Start, err = parseTime(q.Get("start_date")); err != nil {
		return Filter{}, err
	}
	if f.End, err = parseTime(q.Get("end_date")); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func withMediaURLs(r *http.Request, reqs []ServiceRequest) requestList {
	base := baseURL(r)
	for i := range reqs {
		if strings.HasPrefix(reqs[i].MediaURL, mediaPath("")) {
			reqs[i].MediaURL = base + reqs[i].MediaURL
		}
	}
	return reqs
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
