// Package time contains time related helpers
package time

import "time"

// StampLayout names per-run output files, e.g. tweets_20221120_18_05.csv
const StampLayout = "20060102_15_04"

// Now is the clock used for run stamps; tests swap it
var Now = time.Now

// Stamp formats t in UTC with StampLayout
func Stamp(t time.Time) string { return t.UTC().Format(StampLayout) }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
