package usecase

import (
	"errors"
	"net/http"
	"strings"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// Catalog codes used when an upstream failure carries neither a message nor a
// known code
const (
	codeServerError = "SERVER_ERROR"
	codeClientError = "CLIENT_ERROR"
)

// ErrorReporter turns failures into the message recorded for a user or run
type ErrorReporter struct {
	catalog *model.MessageCatalog
}

// NewErrorReporter creates a reporter backed by catalog. A nil catalog means
// the built-in one.
func NewErrorReporter(catalog *model.MessageCatalog) *ErrorReporter {
	if catalog == nil {
		catalog = model.GetDefaultMessageCatalog()
	}
	return &ErrorReporter{catalog: catalog}
}

// Classify returns a non-empty, human readable message for err. It prefers the
// message the upstream service sent, then the catalog text of its error code,
// then the error text itself.
func (r *ErrorReporter) Classify(err error) (msg string) {
	defer func() {
		if rec := recover(); rec != nil || msg == "" {
			msg = r.defaultMessage()
		}
	}()

	if err == nil {
		return r.defaultMessage()
	}

	var upstream *model.UpstreamError
	if errors.As(err, &upstream) {
		return r.classifyUpstream(upstream)
	}

	return strings.TrimSpace(err.Error())
}

func (r *ErrorReporter) classifyUpstream(upstream *model.UpstreamError) string {
	if msg := strings.TrimSpace(upstream.Message); msg != "" {
		return msg
	}
	if msg, ok := r.catalog.Lookup(upstream.Code); ok {
		return msg
	}

	switch {
	case upstream.StatusCode >= http.StatusInternalServerError:
		if msg, ok := r.catalog.Lookup(codeServerError); ok {
			return msg
		}
	case upstream.StatusCode >= http.StatusBadRequest:
		if msg, ok := r.catalog.Lookup(codeClientError); ok {
			return msg
		}
	}
	return r.defaultMessage()
}

func (r *ErrorReporter) defaultMessage() string {
	if r.catalog != nil && r.catalog.DefaultMessage != "" {
		return r.catalog.DefaultMessage
	}
	return "unknown error"
}
