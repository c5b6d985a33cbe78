package translate

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed languages.json
var languagesJSON []byte

var (
	langOnce sync.Once
	langs    map[string]string
)

func languages() map[string]string {
	langOnce.Do(func() {
		if err := json.Unmarshal(languagesJSON, &langs); err != nil {
			panic("translate: bad embedded language table: " + err.Error())
		}
	})
	return langs
}

// Supported reports whether code is a language the endpoint accepts.
// Lookup ignores case so zh-CN and zh-cn are the same code.
func Supported(code string) bool {
	_, ok := languages()[strings.ToLower(code)]
	return ok
}

// LanguageName returns the English name for code, or "" when unknown
func LanguageName(code string) string {
	return languages()[strings.ToLower(code)]
}
