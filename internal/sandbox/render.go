// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/MKhiriev/go-open311/internal/logger"
	"github.com/MKhiriev/go-open311/internal/utils"
)

// document is a response body that can be written as json (through its
// json tags) and as Open311 xml.
type document interface {
	xmlDocument() *etree.Document
}

type (
	serviceList  []Service
	requestList  []ServiceRequest
	createdList  []Created
	tokenList    []TokenInfo
	apiErrorList []APIError
)

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, body document) {
	var err error
	if requestFormat(r) == formatXML {
		_, err = utils.WriteXML(w, body.xmlDocument(), status)
	} else {
		_, err = utils.WriteJSON(w, body, status)
	}

	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	h.render(w, r, status, apiErrorList{{Code: status, Description: err.Error()}})
}

func newDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	return doc, doc.CreateElement(root)
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func (l serviceList) xmlDocument() *etree.Document {
	doc, root := newDocument("services")
	for _, s := range l {
		el := root.CreateElement("service")
		addText(el, "service_code", s.Code)
		addText(el, "service_name", s.Name)
		addText(el, "description", s.Description)
		addText(el, "metadata", strconv.FormatBool(s.Metadata))
		addText(el, "type", s.Type)
		addText(el, "keywords", s.Keywords)
		addText(el, "group", s.Group)
	}
	return doc
}

func (d ServiceDefinition) xmlDocument() *etree.Document {
	doc, root := newDocument("service_definition")
	addText(root, "service_code", d.ServiceCode)

	attrs := root.CreateElement("attributes")
	for _, a := range d.Attributes {
		el := attrs.CreateElement("attribute")
		addText(el, "variable", strconv.FormatBool(a.Variable))
		addText(el, "code", a.Code)
		addText(el, "datatype", a.Datatype)
		addText(el, "required", strconv.FormatBool(a.Required))
		addText(el, "datatype_description", a.DatatypeDescription)
		addText(el, "order", strconv.Itoa(a.Order))
		addText(el, "description", a.Description)

		if len(a.Values) > 0 {
			values := el.CreateElement("values")
			for _, v := range a.Values {
				value := values.CreateElement("value")
				addText(value, "key", v.Key)
				addText(value, "name", v.Name)
			}
		}
	}
	return doc
}

func (l requestList) xmlDocument() *etree.Document {
	doc, root := newDocument("service_requests")
	for _, req := range l {
		el := root.CreateElement("request")
		addText(el, "service_request_id", req.ID)
		addText(el, "status", req.Status)
		addText(el, "status_notes", req.StatusNotes)
		addText(el, "service_name", req.ServiceName)
		addText(el, "service_code", req.ServiceCode)
		addText(el, "description", req.Description)
		addText(el, "agency_responsible", req.AgencyResponsible)
		addText(el, "service_notice", req.ServiceNotice)
		addText(el, "requested_datetime", formatTime(req.RequestedAt))
		addText(el, "updated_datetime", formatTime(req.UpdatedAt))
		addText(el, "address", req.Address)
		addText(el, "lat", req.Lat)
		addText(el, "long", req.Long)
		addText(el, "media_url", req.MediaURL)
	}
	return doc
}

func (l createdList) xmlDocument() *etree.Document {
	doc, root := newDocument("service_requests")
	for _, c := range l {
		el := root.CreateElement("request")
		addText(el, "service_request_id", c.ID)
		addText(el, "token", c.Token)
		addText(el, "service_notice", c.ServiceNotice)
	}
	return doc
}

func (l tokenList) xmlDocument() *etree.Document {
	doc, root := newDocument("service_requests")
	for _, t := range l {
		el := root.CreateElement("request")
		addText(el, "service_request_id", t.ID)
		addText(el, "token", t.Token)
	}
	return doc
}

func (d Discovery) xmlDocument() *etree.Document {
	doc, root := newDocument("discovery")
	addText(root, "changeset", d.Changeset)
	addText(root, "contact", d.Contact)
	addText(root, "key_service", d.KeyService)

	endpoints := root.CreateElement("endpoints")
	for _, e := range d.Endpoints {
		el := endpoints.CreateElement("endpoint")
		addText(el, "specification", e.Specification)
		addText(el, "url", e.URL)
		addText(el, "changeset", e.Changeset)
		addText(el, "type", e.Type)

		formats := el.CreateElement("formats")
		for _, f := range e.Formats {
			addText(formats, "format", f)
		}
	}
	return doc
}

func (l apiErrorList) xmlDocument() *etree.Document {
	doc, root := newDocument("errors")
	for _, e := range l {
		el := root.CreateElement("error")
		addText(el, "code", strconv.Itoa(e.Code))
		addText(el, "description", e.Description)
	}
	return doc
}
