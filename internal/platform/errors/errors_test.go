package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeUnsupported, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUpstream, http.StatusBadGateway},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeCanceled, 499},
		{ErrorCodeStorage, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	e := Newf(ErrorCodeJSON, "bad json at %d", 12)
	if e.Error() != "bad json at 12" || CodeOf(e) != ErrorCodeJSON {
		t.Fatalf("Newf mismatch: %v / %v", e, CodeOf(e))
	}

	src := stderrs.New("status 503")
	w := Wrapf(src, ErrorCodeUpstream, "search page %d", 2)
	if !stderrs.Is(w, src) {
		t.Fatalf("Wrapf must keep the cause")
	}
	if w.Error() != "search page 2: status 503" {
		t.Fatalf("Error() = %q", w.Error())
	}
	if Root(w) != src {
		t.Fatalf("Root should return the deepest cause")
	}

	outer := fmt.Errorf("collect: %w", w)
	if !IsCode(outer, ErrorCodeUpstream) {
		t.Fatalf("IsCode should see through fmt wrapping")
	}

	f := WithOp(WithField(InvalidArgf("bad"), "posts[0].text"), "preprocess")
	pe, ok := As(f)
	if !ok || pe.Field() != "posts[0].text" || pe.Op() != "preprocess" {
		t.Fatalf("field/op not attached: %+v", pe)
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField must pass foreign errors through")
	}

	if WrapIf(nil, ErrorCodeStorage, "x") != nil {
		t.Fatalf("WrapIf(nil) must be nil")
	}
}

func TestCodeOfContextErrors(t *testing.T) {
	if CodeOf(context.DeadlineExceeded) != ErrorCodeTimeout {
		t.Fatalf("deadline should map to timeout")
	}
	if CodeOf(fmt.Errorf("wrapped: %w", context.Canceled)) != ErrorCodeCanceled {
		t.Fatalf("canceled should map to canceled")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("plain error should be unknown")
	}
}

func TestWireAndHTTP(t *testing.T) {
	status, wire := HTTP(Unsupportedf("language %q", "qme"))
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", status)
	}
	if wire.Name != "unsupported" || wire.Message != `language "qme"` {
		t.Fatalf("wire = %+v", wire)
	}

	status, wire = HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("nil should be 200 + zero wire")
	}

	wire = WireFrom(stderrs.New("boom"))
	if wire.Code != ErrorCodeUnknown || wire.Message != "boom" {
		t.Fatalf("foreign wire = %+v", wire)
	}
	if ErrorCode(400).String() != "code(400)" {
		t.Fatalf("unknown code String() = %q", ErrorCode(400).String())
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unavailable", New(ErrorCodeUnavailable, "x"), true},
		{"rate limited", New(ErrorCodeTooManyRequests, "x"), true},
		{"deadline", context.DeadlineExceeded, true},
		{"upstream", Upstreamf("x"), false},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"pg unique", &pgconn.PgError{Code: "23505"}, false},
	}
	for _, c := range cases {
		if got := Retryable(c.err); got != c.want {
			t.Fatalf("%s: Retryable = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23502", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"23505", ErrorCodeStorage},
	}
	for _, c := range cases {
		err := FromPostgres(&pgconn.PgError{Code: c.sqlstate}, "insert posts")
		if CodeOf(err) != c.want {
			t.Fatalf("%s: code = %v, want %v", c.sqlstate, CodeOf(err), c.want)
		}
	}
	if !IsDuplicateKey(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("IsDuplicateKey should unwrap")
	}
	if CodeOf(FromPostgres(stderrs.New("conn reset"), "x")) != ErrorCodeStorage {
		t.Fatalf("foreign errors default to storage")
	}
}
