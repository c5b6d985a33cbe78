package module

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"tweetsnlp/internal/core/preproc"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/platform/config"
	"tweetsnlp/internal/platform/metrics"
	phttp "tweetsnlp/internal/platform/net/http"
)

type identity struct{}

func (identity) Lemma(w string) string { return w }

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Name  string `json:"name"`
		Field string `json:"field"`
	} `json:"error"`
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	pp, err := preproc.New(preproc.WithLemmatizer(identity{}))
	require.NoError(t, err)
	mux := chi.NewRouter()
	m := NewWith(modkit.Deps{}, pp)
	require.Equal(t, "preprocess", m.Name())
	modkit.MountAPI(phttp.AdaptChi(mux), "v1", nil, m)
	return mux
}

func post(t *testing.T, h http.Handler, path, body string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestPreprocessRoute(t *testing.T) {
	t.Parallel()
	h := newServer(t)
	code, env := post(t, h, "/api/v1/preprocess",
		`{"posts":[{"id":"1","text":"What a goal!","lang":"en"},{"id":"2","text":"the a an","lang":"en"}],"mode":"lemma"}`)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.OK)

	var out struct {
		Results []struct {
			ID    string   `json:"id"`
			Clean []string `json:"clean"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Results, 1)
	require.Equal(t, "1", out.Results[0].ID)
	require.Contains(t, out.Results[0].Clean, "goal")
}

func TestPreprocessRoute_Validation(t *testing.T) {
	t.Parallel()
	h := newServer(t)
	cases := []struct {
		name, body, field string
	}{
		{"no posts", `{"posts":[]}`, "posts"},
		{"missing text", `{"posts":[{"id":"1"}]}`, "posts[0].text"},
		{"bad lang", `{"posts":[{"id":"1","text":"x","lang":"not a lang"}]}`, "posts[0].lang"},
		{"bad mode", `{"posts":[{"id":"1","text":"x"}],"mode":"porter"}`, "mode"},
	}
	for _, c := range cases {
		code, env := post(t, h, "/api/v1/preprocess", c.body)
		require.Equal(t, http.StatusBadRequest, code, c.name)
		require.False(t, env.OK, c.name)
		require.NotNil(t, env.Error, c.name)
		require.Equal(t, "validation", env.Error.Name, c.name)
		require.Equal(t, c.field, env.Error.Field, c.name)
	}
}

func TestPreprocessRoute_TooManyPosts(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	buf.WriteString(`{"posts":[`)
	for i := 0; i <= 500; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"id":"x","text":"goal"}`)
	}
	buf.WriteString(`]}`)
	code, env := post(t, newServer(t), "/api/v1/preprocess", buf.String())
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "posts", env.Error.Field)
}

func TestCleanAndPhrasesRoutes(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	code, env := post(t, h, "/api/v1/clean", `{"text":"GOAL!!! #FIFA"}`)
	require.Equal(t, http.StatusOK, code)
	var c struct{ Clean string }
	require.NoError(t, json.Unmarshal(env.Data, &c))
	require.Equal(t, "goal!!!", c.Clean)

	code, env = post(t, h, "/api/v1/phrases", `{"text":"What a match! Incredible","lang":"en"}`)
	require.Equal(t, http.StatusOK, code)
	var p struct{ Phrases []string }
	require.NoError(t, json.Unmarshal(env.Data, &p))
	require.Len(t, p.Phrases, 2)

	code, env = post(t, h, "/api/v1/clean", `{}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "text", env.Error.Field)
}

func TestFromConfigAndNew(t *testing.T) {
	t.Setenv("TWEETSNLP_MODE", "STEM")
	t.Setenv("TWEETSNLP_TRANSLATE_DISABLED", "true")
	o := FromConfig(config.New())
	require.Equal(t, "stem", o.Mode)
	require.True(t, o.TranslateDisabled)

	c := metrics.New("tweetsnlp_test", "dev", "none")
	pp, err := NewPreProcessor(modkit.Deps{Metrics: c}, o)
	require.NoError(t, err)
	require.Equal(t, preproc.ModeStem, pp.Mode())

	_, err = NewPreProcessor(modkit.Deps{}, Options{Mode: "porter"})
	require.Error(t, err)
}
