// Package response writes every API answer in the {message, data} envelope,
// serialized according to the request's Accept header.
package response

import (
	"bytes"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/logger"
)

// Send writes the envelope with the given status. A nil data is omitted.
func Send(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	enc := Negotiate(r.Header.Get("Accept"))

	var buf bytes.Buffer
	if err := enc.Encode(&buf, Envelope{Message: message, Data: data}); err != nil {
		logger.Log.Errorw("failed to encode response", "request_id", logger.RequestID(r.Context()), "error", err)
		http.Error(w, apperr.GenericMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Error translates err and writes it. Non-operational errors are logged with
// their details and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)

	if appErr.Operational {
		logger.Log.Debugw("request failed",
			"request_id", logger.RequestID(r.Context()),
			"status", appErr.Status(),
			"error", appErr.Error(),
		)
	} else {
		logger.Log.Errorw("unexpected error",
			"request_id", logger.RequestID(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
		)
	}

	Send(w, r, appErr.Status(), appErr.PublicMessage(), nil)
}
