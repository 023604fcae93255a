// Package build reports how the running binary was built.
//
// Release builds inject a JSON blob with -ldflags:
//
//	go build -ldflags "-X 'github.com/amp-labs/amp-containers/build.injected={...}'" ./cmd/sortbench
//
// Other builds fall back to what the Go toolchain records in the binary.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"sync"
)

// injected is set at link time.
var injected string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	GitBranch    string            `json:"git_branch"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"`   //nolint:tagliatelle
	BuildTime    string            `json:"build_time"` //nolint:tagliatelle
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Modified     bool              `json:"modified"`
	Dependencies map[string]string `json:"dependencies"`
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if js == "" || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts the toolchain's record of a build.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, dep := range bi.Deps {
		version := dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Path + "@" + dep.Replace.Version
		}

		info.Dependencies[dep.Path] = version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// Current returns the injected build info if present, then the toolchain's,
// then an empty Info.
var Current = sync.OnceValue(func() *Info { //nolint:gochecknoglobals
	if info, ok := Parse(injected); ok {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		return FromBuildInfo(bi)
	}

	return &Info{Version: "(unknown)"}
})
