package version

import (
	"github.com/Masterminds/semver/v3"
)

var (
	parsedVersion  *semver.Version
	parseAttempted bool
)

// resetParsedVersion clears the cached parsed version for testing.
func resetParsedVersion() {
	parsedVersion = nil
	parseAttempted = false
}

// Parsed returns the parsed semantic version, or nil if unparseable.
// Computed on first call and cached.
func Parsed() *semver.Version {
	if parsedVersion != nil || parseAttempted {
		return parsedVersion
	}
	parseAttempted = true

	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	parsedVersion = v
	return parsedVersion
}

// IsPrerelease returns true if the current version is a pre-release.
// Returns false for unparseable versions (like "dev").
func IsPrerelease() bool {
	v := Parsed()
	return v != nil && v.Prerelease() != ""
}

// IsDevBuild returns true if this is a development build (no valid semver).
func IsDevBuild() bool {
	return Parsed() == nil
}

// Release channels reported by Channel.
const (
	ChannelDev        = "dev"
	ChannelPrerelease = "prerelease"
	ChannelStable     = "stable"
)

// Channel classifies the build for telemetry.
func Channel() string {
	switch {
	case IsDevBuild():
		return ChannelDev
	case IsPrerelease():
		return ChannelPrerelease
	default:
		return ChannelStable
	}
}

// Display returns the version as shown to users: a canonical "v1.2.3"
// for release builds and the raw string otherwise.
func Display() string {
	v := Parsed()
	if v == nil {
		return Version
	}
	return "v" + v.String()
}
