// Package langhint decides how a post's reported language code is handled
// before translation, and guesses a code from the text when none is given.
package langhint

import "strings"

// Route is the closed set of translation dispatches
type Route uint8

const (
	// RoutePassthrough leaves English and undetermined text untranslated
	RoutePassthrough Route = iota
	// RouteHindi covers the search API reporting Hindi as "in"
	RouteHindi
	// RouteChinese translates "zh" from simplified Chinese
	RouteChinese
	// RouteBestEffort uses the reported code as source and falls back to the
	// untranslated text on any failure
	RouteBestEffort
)

// Undetermined is the code the search API uses when it cannot tell the language
const Undetermined = "und"

// Auto asks the translator to detect the source language itself
const Auto = "auto"

// RouteFor maps a reported language code to its Route. Matching is case-insensitive.
func RouteFor(code string) Route {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", Undetermined:
		return RoutePassthrough
	case "in":
		return RouteHindi
	case "zh":
		return RouteChinese
	default:
		return RouteBestEffort
	}
}

// Source returns the translator source code for a post reported as code.
// Empty for RoutePassthrough.
func (r Route) Source(code string) string {
	switch r {
	case RoutePassthrough:
		return ""
	case RouteHindi:
		return "hi"
	case RouteChinese:
		return "zh-CN"
	default:
		if c := strings.ToLower(strings.TrimSpace(code)); c != "" {
			return c
		}
		return Auto
	}
}

// Translates reports whether the route calls the translator at all
func (r Route) Translates() bool { return r != RoutePassthrough }

func (r Route) String() string {
	switch r {
	case RoutePassthrough:
		return "passthrough"
	case RouteHindi:
		return "hindi"
	case RouteChinese:
		return "chinese"
	case RouteBestEffort:
		return "best_effort"
	}
	return "unknown"
}
