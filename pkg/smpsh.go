// Package smpsh provides version information for the smpsh application.
package smpsh

var (
	// Version is the application version. It is overwritten during
	// the build with the current tag.
	Version = "v0.1.0"

	// Build is the timestamp of the build. It is overwritten during
	// the build.
	Build = "n/a"
)
