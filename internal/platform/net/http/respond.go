// Package http is the JSON transport layer: router seam, envelope, handlers and server
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "tweetsnlp/internal/platform/errors"
	pnet "tweetsnlp/internal/platform/net"
)

// Envelope is the body of every JSON response.
// Exactly one of Data and Error is set.
type Envelope struct {
	OK        bool       `json:"ok"`
	Data      any        `json:"data,omitempty"`
	Error     *perr.Wire `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, Envelope{OK: true, Data: data, RequestID: pnet.RequestID(r.Context())})
}

// RespondError maps err to a status and error envelope
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	wire := perr.WireFrom(err)
	JSON(w, perr.HTTPStatus(err), Envelope{Error: &wire, RequestID: pnet.RequestID(r.Context())})
}

// Response is what return-style handlers produce
type Response struct {
	Status int
	Body   any
	Err    error
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a failure whose status comes from the error code
func Error(err error) Response { return Response{Err: err} }

// Handle adapts a return-style handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		res := h(r)
		if res.Err != nil {
			RespondError(w, r, res.Err)
			return
		}
		if res.Status == 0 || res.Status == stdhttp.StatusOK {
			RespondOK(w, r, res.Body)
			return
		}
		JSON(w, res.Status, Envelope{OK: true, Data: res.Body, RequestID: pnet.RequestID(r.Context())})
	}
}
