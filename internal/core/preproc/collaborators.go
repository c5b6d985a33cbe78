package preproc

import (
	"context"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/kljensen/snowball/english"
)

// Translator turns text in src into dst. src may be "auto".
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// Lemmatizer reduces a word to its dictionary form
type Lemmatizer interface {
	Lemma(word string) string
}

// Stemmer reduces a word to its stem
type Stemmer interface {
	Stem(word string) string
}

// Tokenizer splits text into word and sentence tokens
type Tokenizer interface {
	Words(s string) []string
	Sentences(s string) []string
}

// NewEnglishLemmatizer loads the embedded English lemma dictionary.
// Loading takes a while and a fair amount of memory; build it once.
func NewEnglishLemmatizer() (Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SnowballStemmer is the English Snowball (Porter2) stemmer
type SnowballStemmer struct{}

// Stem implements Stemmer
func (SnowballStemmer) Stem(word string) string { return english.Stem(word, false) }

// UAX29 segments text by the Unicode text segmentation rules
type UAX29 struct{}

// Words returns word and punctuation segments, whitespace skipped
func (UAX29) Words(s string) []string {
	var out []string
	tokens := words.FromString(s)
	for tokens.Next() {
		if v := tokens.Value(); !isSpace(v) {
			out = append(out, v)
		}
	}
	return out
}

// Sentences returns trimmed, non-empty sentences
func (UAX29) Sentences(s string) []string {
	var out []string
	tokens := sentences.FromString(s)
	for tokens.Next() {
		if v := strings.TrimSpace(tokens.Value()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
