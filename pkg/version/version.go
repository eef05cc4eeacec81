// Package version holds the application version string.
package version

// Version is the application version. Overridden at build time via
// -ldflags "-X cinecam/pkg/version.Version=...".
var Version = "0.3.0-dev"
