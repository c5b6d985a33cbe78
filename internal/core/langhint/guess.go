package langhint

import "unicode"

// minLetters is the least evidence Guess needs before naming a language
const minLetters = 4

type scriptCount struct {
	table *unicode.RangeTable
	lang  string
	n     int
}

// Guess returns a language code for text with no reported language.
// Scripts that point at one language give that code (kana "ja", Hangul "ko",
// Han "zh", Devanagari "hi", ...). Latin and other shared scripts give Auto so
// the translator detects the source. Too few letters gives Undetermined,
// which is never translated.
func Guess(text string) string {
	// kana before Han: Japanese mixes both
	counts := []scriptCount{
		{table: unicode.Hiragana, lang: "ja"},
		{table: unicode.Katakana, lang: "ja"},
		{table: unicode.Hangul, lang: "ko"},
		{table: unicode.Han, lang: "zh"},
		{table: unicode.Arabic, lang: Auto}, // ar, fa, ur
		{table: unicode.Hebrew, lang: "iw"},
		{table: unicode.Thai, lang: "th"},
		{table: unicode.Greek, lang: "el"},
		{table: unicode.Georgian, lang: "ka"},
		{table: unicode.Armenian, lang: "hy"},
		{table: unicode.Devanagari, lang: "hi"},
		{table: unicode.Cyrillic, lang: Auto}, // ru, uk, bg, sr...
		{table: unicode.Latin, lang: Auto},
	}

	total := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for i := range counts {
			if unicode.Is(counts[i].table, r) {
				counts[i].n++
				break
			}
		}
	}
	if total < minLetters {
		return Undetermined
	}

	// any kana decides Japanese even when Han dominates
	if counts[0].n > 0 || counts[1].n > 0 {
		return "ja"
	}
	best := -1
	for i, c := range counts {
		if c.n > 0 && (best < 0 || c.n > counts[best].n) {
			best = i
		}
	}
	if best < 0 {
		return Auto
	}
	return counts[best].lang
}
