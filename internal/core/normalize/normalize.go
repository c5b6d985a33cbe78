// Package normalize cleans raw post text before translation and folds it to
// ASCII afterwards.
//
// Clean runs, in order:
// 1 case fold to lower
// 2 accent strip (NFD, drop nonspacing marks, NFC) and typographic look-alikes to ASCII
// 3 markup strip <...>
// 4 entity strip: @mentions, #hashtags, the marks - . , : _ ; and URLs to end of line,
// and double quotes, then whitespace collapse and trim
//
// ASCIIFold is the post-translation step: NFKC then drop every non-ASCII rune.
package normalize

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	markupRe = regexp.MustCompile(`<[^<>]*>`)
	entityRe = regexp.MustCompile(`(@[A-Za-z0-9]+)|(#[A-Za-z0-9]+)|([-.,:_;])|(https?://.*[\r\n]*)`)
)

// transformers keep state, so each call takes a fresh chain from a pool
var (
	foldPool = sync.Pool{
		New: func() any {
			return transform.Chain(
				cases.Lower(language.Und),
				norm.NFD,
				runes.Remove(runes.In(unicode.Mn)),
				norm.NFC,
			)
		},
	}
	asciiPool = sync.Pool{
		New: func() any {
			return transform.Chain(
				norm.NFKC,
				runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
			)
		},
	}
)

// Cleaner is stateless and safe for concurrent use
type Cleaner struct{}

// New constructs a Cleaner
func New() *Cleaner { return &Cleaner{} }

// Clean applies stages 1 to 4. Stages 3 and 4 repeat until nothing changes,
// since a removal can splice a new tag or hashtag together ("#-goal").
// Clean(Clean(s)) == Clean(s).
func (c *Cleaner) Clean(s string) string {
	if s == "" {
		return ""
	}
	s = FoldCase(Sanitize(s))
	for {
		next := StripEntities(StripMarkup(s))
		if next == s {
			return next
		}
		s = next
	}
}

// FoldCase lowercases s and strips accents, leaving non-Latin scripts intact
func FoldCase(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return lookalikes.Replace(out)
}

// StripMarkup removes HTML-tag-like substrings
func StripMarkup(s string) string { return markupRe.ReplaceAllString(s, "") }

// StripEntities removes mentions, hashtags, the fixed punctuation set, URLs
// and double quotes, then collapses whitespace
func StripEntities(s string) string {
	s = entityRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `"`, "")
	return collapseSpaces(s)
}

// ASCIIFold applies NFKC and drops anything outside ASCII
func ASCIIFold(s string) string {
	if s == "" {
		return ""
	}
	tr := asciiPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	asciiPool.Put(tr)
	if err != nil {
		return ""
	}
	return out
}

// collapseSpaces turns every whitespace run, newlines included, into one
// ASCII space and trims both ends
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
