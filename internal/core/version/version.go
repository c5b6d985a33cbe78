// Package version reports what binary is running and from which build
package version

import "runtime/debug"

// BuildInfo describes a build of one of the tweetsnlp binaries
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set at link time:
//
//	go build -ldflags "-X tweetsnlp/internal/core/version.version=v0.1.0 \
//	  -X tweetsnlp/internal/core/version.commit=abcd \
//	  -X tweetsnlp/internal/core/version.date=2022-11-20"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	service = "tweetsnlp"
)

// SetService names the running binary; cmd mains call it first
func SetService(name string) {
	if name != "" {
		service = name
	}
}

// Info returns the build information, falling back to the module's
// embedded VCS revision when commit was not linked in
func Info() BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.Go = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					bi.Commit = s.Value
				}
			}
		}
	}
	return bi
}
