package normalize

import "strings"

// lookalikes maps typographic characters that survive accent stripping
// to their closest ASCII spelling. Apostrophes matter most: contraction
// expansion only recognises the ASCII form.
var lookalikes = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‚", "'",
	"‛", "'",
	"′", "'", // prime
	"´", "'", // acute accent
	"ʼ", "'", // modifier apostrophe
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"«", `"`,
	"»", `"`,
	"″", `"`,
	"‐", "-",
	"‑", "-",
	"‒", "-",
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-",
	"…", "...",
	" ", " ", // nbsp
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
)
