package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/saned/saned-backend/internal/app.Version=1.4.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary. Both saned-backend and sanedctl
// report it.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// Info returns the ldflags-injected build metadata.
func Info() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.BuildTime)
}

// BuildVersion is Info().String(), used in startup logs.
func BuildVersion() string {
	return Info().String()
}
