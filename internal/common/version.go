package common

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Build metadata, overridden at build time via ldflags:
//
//	-X github.com/bobmcallan/pulse/internal/common.Version=1.2.3
//	-X github.com/bobmcallan/pulse/internal/common.Build=2026-08-23T10:00:00Z
//	-X github.com/bobmcallan/pulse/internal/common.GitCommit=abc1234
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the semantic version string
func GetVersion() string {
	return Version
}

// GetBuild returns the build timestamp
func GetBuild() string {
	return Build
}

// GetGitCommit returns the short git commit hash
func GetGitCommit() string {
	return GitCommit
}

// versionFileName sits next to the binary, like pulse.toml does.
const versionFileName = ".version"

// LoadVersionFromDir reads dir/.version and fills in any build metadata
// still at its compiled-in default. The file holds one "key: value" pair
// per line (keys: version, build, commit); blank lines and # comments
// are skipped. ldflags values always win, and a missing or malformed
// file is not an error.
func LoadVersionFromDir(dir string) {
	f, err := os.Open(filepath.Join(dir, versionFileName))
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		switch strings.TrimSpace(key) {
		case "version":
			if Version == "dev" {
				Version = val
			}
		case "build":
			if Build == "unknown" {
				Build = val
			}
		case "commit":
			if GitCommit == "unknown" {
				GitCommit = val
			}
		}
	}
}
