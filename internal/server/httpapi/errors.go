package httpapi

import (
	"errors"
	"fmt"
	"net/http"
)

// PublicError is returned by handlers for failures whose message is safe
// to show to the client.
type PublicError struct {
	Code    int
	Message string
}

func (pe PublicError) Error() string {
	return fmt.Sprintf("(%d) %s", pe.Code, pe.Message)
}

// ServerError is an internal fault. Err is logged; the client only sees
// Message with a 500 status.
type ServerError struct {
	Message string
	Err     error
}

func (se ServerError) Error() string {
	return fmt.Sprintf("%s: %v", se.Message, se.Err)
}

func (se ServerError) Unwrap() error { return se.Err }

func serverError(message string, err error) error {
	return ServerError{Message: message, Err: err}
}

// HandlerWithError is a wrapper around a http.Handler that allows you to return an error.
type HandlerWithError func(w http.ResponseWriter, r *http.Request) error

func (h HandlerWithError) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := loggerFromContext(r.Context())

	defer func() {
		if p := recover(); p != nil {
			log.Error(r.Context(), "recovered from panic", "panic", p)
			writeJSON(w, http.StatusInternalServerError, jMap{"error": msgInternal})
		}
	}()

	err := h(w, r)
	if err == nil {
		return
	}

	var perr PublicError
	if errors.As(err, &perr) {
		log.Debug(r.Context(), "request rejected", "status", perr.Code, "error", perr.Message)
		writeJSON(w, perr.Code, jMap{"error": perr.Message})
		return
	}

	message := msgInternal
	var serr ServerError
	if errors.As(err, &serr) {
		message = serr.Message
	}
	log.Error(r.Context(), "request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, jMap{"error": message})
}
