// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X github.com/vidl-dev/vidl/internal/version.Version=1.2.3"
package version

// Version is the semantic version reported by --version and doctor.
var Version = "0.3.0"
