package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "tweetsnlp/internal/platform/errors"
	pnet "tweetsnlp/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

type body struct {
	OK        bool            `json:"ok"`
	Data      json.RawMessage `json:"data"`
	Error     *perr.Wire      `json:"error"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return b
}

func TestHandle_Envelopes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		res    Response
		status int
		ok     bool
		data   string
		code   perr.ErrorCode
	}{
		{"ok", OK(map[string]int{"n": 1}), 200, true, `{"n":1}`, 0},
		{"zero status", Response{Body: "x"}, 200, true, `"x"`, 0},
		{"validation", Error(perr.Validationf("text is required")), 400, false, "", perr.ErrorCodeValidation},
		{"upstream", Error(perr.Upstreamf("search 503")), 502, false, "", perr.ErrorCodeUpstream},
		{"foreign", Error(errors.New("boom")), 500, false, "", perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
			req = req.WithContext(pnet.WithRequestID(req.Context(), "rid"))
			rec := httptest.NewRecorder()
			Handle(func(*stdhttp.Request) Response { return tc.res })(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Fatalf("content type = %q", ct)
			}
			b := decode(t, rec)
			if b.OK != tc.ok || b.RequestID != "rid" {
				t.Fatalf("envelope = %+v", b)
			}
			if tc.ok {
				if string(b.Data) != tc.data || b.Error != nil {
					t.Fatalf("data = %s err = %+v", b.Data, b.Error)
				}
				return
			}
			if b.Error == nil || b.Error.Code != tc.code || b.Error.Name != tc.code.String() {
				t.Fatalf("error = %+v", b.Error)
			}
		})
	}
}

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func TestRouter_PostAndGetJSON(t *testing.T) {
	t.Parallel()
	r := AdaptChi(chi.NewRouter())
	r.Route("/api/v1", func(api Router) {
		PostJSON(api, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
			return map[string]string{"text": in.Text}, nil
		})
		GetJSON(api, "/pattern", func(req *stdhttp.Request) (any, error) {
			return RoutePattern(req), nil
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/api/v1/echo", strings.NewReader(`{"text":"hi"}`)))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"text":"hi"`) {
		t.Fatalf("echo: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/api/v1/echo", strings.NewReader(`{}`)))
	if rec.Code != 400 {
		t.Fatalf("validation status = %d", rec.Code)
	}
	if b := decode(t, rec); b.Error == nil || b.Error.Field != "text" {
		t.Fatalf("validation envelope = %+v", b)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/api/v1/pattern", nil))
	if b := decode(t, rec); string(b.Data) != `"/api/v1/pattern"` {
		t.Fatalf("pattern = %s", b.Data)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/api/v1/echo", nil))
	if rec.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET on POST route = %d", rec.Code)
	}
}
