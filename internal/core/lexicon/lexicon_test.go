package lexicon

import (
	"reflect"
	"testing"

	kit "tweetsnlp/internal/platform/testkit"
)

func TestDefault_Loads(t *testing.T) {
	t.Parallel()
	l := Default()
	if l.Version != 1 {
		t.Fatalf("Version = %d", l.Version)
	}
	if len(l.stop) != 179 {
		t.Fatalf("stopwords = %d, want 179", len(l.stop))
	}
	if got := l.Slang()["2morrow"]; got != "tomorrow" {
		t.Fatalf("slang 2morrow = %q", got)
	}
	if Default() != l {
		t.Fatalf("Default should be parsed once")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"bad json":     `{`,
		"no stopwords": `{"version":1,"stopwords":[]}`,
		"empty slang":  `{"version":1,"stopwords":["a"],"slang":[{"from":"","to":"x"}]}`,
	}
	for name, in := range cases {
		if _, err := Parse([]byte(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestIsStopword_CaseSensitive(t *testing.T) {
	t.Parallel()
	l := Default()
	for _, w := range []string{"the", "i", "don't", "won"} {
		if !l.IsStopword(w) {
			t.Fatalf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"The", "I", "cup", ""} {
		if l.IsStopword(w) {
			t.Fatalf("%q should not be a stopword", w)
		}
	}
}

func TestRemoveStopwords(t *testing.T) {
	t.Parallel()
	got := Default().RemoveStopwords("  i luv the world cup!! and  it is great ")
	if got != "luv world cup!! great" {
		t.Fatalf("RemoveStopwords = %q", got)
	}
	if Default().RemoveStopwords("the a an") != "" {
		t.Fatalf("all-stopword text should become empty")
	}
}

func TestReplaceSlang(t *testing.T) {
	t.Parallel()
	l := Default()
	cases := []struct{ in, want string }{
		{"see u 2morrow", "see u tomorrow"},
		{"idk btw", "i don't know by the way"},
		{"so goood :)", "so good smile"},
		{"the ppl here", "the people here"},
		{"ppl here", "ppl here"}, // key carries its surrounding spaces
		{"abc", "abecause"},      // literal substring, no word boundaries
		{"yeshhhhhhhh!", "yes!"},
		{"nothing to do", "nothing to do"},
		{"", ""},
	}
	for _, c := range cases {
		if got := l.ReplaceSlang(c.in); got != c.want {
			t.Fatalf("ReplaceSlang(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReplaceSlang_NoRescan(t *testing.T) {
	t.Parallel()
	l := Default().Merge(map[string]string{"lol": "idk"})
	if got := l.ReplaceSlang("lol"); got != "idk" {
		t.Fatalf("replacement text must not be rescanned, got %q", got)
	}
}

func TestReplaceSlang_LeftmostLongest(t *testing.T) {
	t.Parallel()
	l := Default().Merge(map[string]string{"abcd": "X", "bc": "Y", "cde": "Z"})
	if got := l.ReplaceSlang("abcde"); got != "Xe" {
		t.Fatalf("leftmost-longest = %q, want %q", got, "Xe")
	}
}

func TestMerge_OverrideWins(t *testing.T) {
	t.Parallel()
	base := Default()
	m := base.Merge(map[string]string{"gr8": "excellent", "w8": "wait", "": "ignored"})

	if got := m.Slang()["gr8"]; got != "excellent" {
		t.Fatalf("override should win, got %q", got)
	}
	if got := m.Slang()["w8"]; got != "wait" {
		t.Fatalf("new key missing, got %q", got)
	}
	if _, ok := m.Slang()[""]; ok {
		t.Fatalf("empty key must be ignored")
	}
	if got := base.Slang()["gr8"]; got != "great" {
		t.Fatalf("Merge must not mutate the receiver, got %q", got)
	}
	if len(m.Slang()) != len(base.Slang())+1 {
		t.Fatalf("merged size = %d", len(m.Slang()))
	}
	if base.Merge(nil) != base {
		t.Fatalf("empty merge should return the receiver")
	}
	if got := m.ReplaceSlang("gr8 w8"); got != "excellent wait" {
		t.Fatalf("merged replace = %q", got)
	}
}

func TestExpandContractions(t *testing.T) {
	t.Parallel()
	l := Default()
	cases := []struct{ in, want string }{
		{"don't stop", "do not stop"},
		{"I'm here and you're there", "I am here and you are there"},
		{"won't can't", "will not cannot"},
		{"we'd've", "we'd have"},
		{"shouldn't", "should not"},
		{"couldn't've", "could not have"},
		{"messi's goal", "messi's goal"},
		{"they'll", "they will"},
		{"rock'n'roll", "rock'n'roll"},
		{"no apostrophes", "no apostrophes"},
	}
	for _, c := range cases {
		if got := l.ExpandContractions(c.in); got != c.want {
			t.Fatalf("ExpandContractions(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAutomaton_Matches(t *testing.T) {
	t.Parallel()
	a := buildAutomaton([]string{"he", "she", "hers", ""})
	got := a.matches("ushers")
	want := []span{{1, 4, 1}, {2, 4, 0}, {2, 6, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matches = %+v, want %+v", got, want)
	}
	kit.MustNotPanic(t, func() { _ = a.replace("", []string{"", "", "", ""}) })
}
