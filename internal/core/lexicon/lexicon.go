// Package lexicon holds the English word lists used by the text pipeline:
// stopwords, contractions and the slang normalization dictionary.
// The defaults are embedded from lexicon.json.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

//go:embed lexicon.json
var embedded []byte

type rawSlang struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type rawLexicon struct {
	Version      int               `json:"version"`
	Meta         map[string]any    `json:"meta"`
	Stopwords    []string          `json:"stopwords"`
	Slang        []rawSlang        `json:"slang"`
	Contractions map[string]string `json:"contractions"`
}

// Lexicon is immutable after construction and safe for concurrent use
type Lexicon struct {
	Version int

	stop         map[string]struct{}
	contractions map[string]string

	slangKeys []string // sorted, stable order for the automaton
	slang     map[string]string
	slangRepl []string
	ac        *automaton
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded lexicon, parsed once per process
func Default() *Lexicon {
	defaultOnce.Do(func() { defaultLex, defaultErr = Parse(embedded) })
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultLex
}

// Parse builds a Lexicon from JSON in the lexicon.json layout
func Parse(b []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}
	if len(raw.Stopwords) == 0 {
		return nil, fmt.Errorf("lexicon: no stopwords")
	}

	l := &Lexicon{
		Version:      raw.Version,
		stop:         make(map[string]struct{}, len(raw.Stopwords)),
		contractions: make(map[string]string, len(raw.Contractions)),
	}
	for _, w := range raw.Stopwords {
		l.stop[w] = struct{}{}
	}
	for k, v := range raw.Contractions {
		l.contractions[strings.ToLower(k)] = v
	}
	slang := make(map[string]string, len(raw.Slang))
	for _, s := range raw.Slang {
		if s.From == "" {
			return nil, fmt.Errorf("lexicon: slang entry with empty key (to=%q)", s.To)
		}
		slang[s.From] = s.To
	}
	l.setSlang(slang)
	return l, nil
}

func (l *Lexicon) setSlang(m map[string]string) {
	l.slang = m
	l.slangKeys = make([]string, 0, len(m))
	for k := range m {
		l.slangKeys = append(l.slangKeys, k)
	}
	sort.Strings(l.slangKeys)
	l.slangRepl = make([]string, len(l.slangKeys))
	for i, k := range l.slangKeys {
		l.slangRepl[i] = m[k]
	}
	l.ac = buildAutomaton(l.slangKeys)
}

// Merge returns a copy whose slang dictionary is l's plus overrides.
// On a key collision the override wins. Empty keys are ignored.
func (l *Lexicon) Merge(overrides map[string]string) *Lexicon {
	if len(overrides) == 0 {
		return l
	}
	merged := make(map[string]string, len(l.slang)+len(overrides))
	for k, v := range l.slang {
		merged[k] = v
	}
	for k, v := range overrides {
		if k != "" {
			merged[k] = v
		}
	}
	cp := &Lexicon{Version: l.Version, stop: l.stop, contractions: l.contractions}
	cp.setSlang(merged)
	return cp
}

// Slang returns a copy of the normalization dictionary
func (l *Lexicon) Slang() map[string]string {
	out := make(map[string]string, len(l.slang))
	for k, v := range l.slang {
		out[k] = v
	}
	return out
}

// IsStopword reports exact (case-sensitive) membership in the stopword list
func (l *Lexicon) IsStopword(w string) bool {
	_, ok := l.stop[w]
	return ok
}

// RemoveStopwords drops whitespace-separated tokens that are stopwords
// and rejoins the rest with single spaces
func (l *Lexicon) RemoveStopwords(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if !l.IsStopword(f) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// ReplaceSlang applies the dictionary as literal substring replacements
func (l *Lexicon) ReplaceSlang(s string) string { return l.ac.replace(s, l.slangRepl) }

var contractionRe = regexp.MustCompile(`(?i)[a-z]*'[a-z]+(?:'[a-z]+)?`)

// suffix rules for contractions missing from the table; 's is ambiguous
// (possessive or "is") and is left alone
var contractionSuffixes = []struct{ suffix, repl string }{
	{"n't", " not"},
	{"'re", " are"},
	{"'ll", " will"},
	{"'ve", " have"},
	{"'m", " am"},
	{"'d", " would"},
}

// ExpandContractions rewrites contracted words ("don't" -> "do not").
// A leading capital on the contraction is carried over to the expansion.
func (l *Lexicon) ExpandContractions(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	return contractionRe.ReplaceAllStringFunc(s, func(w string) string {
		lw := strings.ToLower(w)
		exp, ok := l.contractions[lw]
		if !ok {
			for _, r := range contractionSuffixes {
				if stem, found := strings.CutSuffix(lw, r.suffix); found && stem != "" {
					exp, ok = stem+r.repl, true
					break
				}
			}
		}
		if !ok {
			return w
		}
		return matchCapital(w, exp)
	})
}

func matchCapital(orig, exp string) string {
	r, _ := utf8.DecodeRuneInString(orig)
	if !unicode.IsUpper(r) {
		return exp
	}
	e, size := utf8.DecodeRuneInString(exp)
	return string(unicode.ToUpper(e)) + exp[size:]
}
