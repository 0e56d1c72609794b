// Package version reports the build version of pagenav.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// Name is the program name.
const Name = "pagenav"

// devVersion is reported when no version was stamped at build time.
const devVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/stockroom/pagenav/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // set via -ldflags
var version = ""

// GetVersion returns the stamped version, or a development version when the stamp
// is missing or not a semantic version.
func GetVersion() string {
	return resolve(version)
}

func resolve(v string) string {
	if v == "" {
		return devVersion
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return devVersion
	}
	return parsed.String()
}
