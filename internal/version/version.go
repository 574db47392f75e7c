package version

import "fmt"

// Set at build time with -ldflags "-X mini_web/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

func (i Info) String() string {
	return fmt.Sprintf("mini_web %s (commit: %s, built: %s)", i.Version, i.Commit, i.BuildDate)
}

func Short() string {
	return Version
}
