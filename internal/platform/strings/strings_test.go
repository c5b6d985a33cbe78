package strings

import (
	"reflect"
	"testing"

	kit "tweetsnlp/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()
	if got := IfEmpty(nil, []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"a"}, []string{"*"}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("IfEmpty(a) = %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"api/v1":     "/api/v1",
		" /api/v1/ ": "/api/v1",
		"/swagger":   "/swagger",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}

func TestSQLNull(t *testing.T) {
	t.Parallel()
	if SQLNull("  ") != nil {
		t.Fatalf("blank should be nil")
	}
	if p := SQLNull("Doha"); p == nil || *p != "Doha" {
		t.Fatalf("non-blank should pass through")
	}
}

func TestDedupe(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"cup"}, []string{"cup"}},
		{[]string{"world", "cup", "world", "!", "cup", "!"}, []string{"world", "cup", "!"}},
	}
	for _, c := range cases {
		if got := Dedupe(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Dedupe(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
