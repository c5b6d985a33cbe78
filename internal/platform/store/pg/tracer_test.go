package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"SELECT  1":                         "SELECT 1",
		"\n\tINSERT INTO t\n  VALUES ($1)\n": "INSERT INTO t VALUES ($1)",
		"":                                  "",
	}
	for in, want := range cases {
		if got := compact(in); got != want {
			t.Errorf("compact(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	root := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	tr := Tracer(root)

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT\n 1", Args: []any{"secret"}, ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 2", Slow: true})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 3", Err: errors.New("boom")})

	if bytes.Contains(buf.Bytes(), []byte("secret")) {
		t.Fatalf("args must not be logged")
	}
	dec := json.NewDecoder(&buf)
	var levels []string
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decode: %v", err)
		}
		levels = append(levels, m["level"].(string))
		if m["component"] != "pg" {
			t.Fatalf("component = %v", m["component"])
		}
	}
	want := []string{"info", "warn", "warn"}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v", levels)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("levels = %v, want %v", levels, want)
		}
	}
}
