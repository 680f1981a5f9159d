// Package version holds the po-fixup version, set at build time with
// -ldflags "-X github.com/arbricks/po-fixup/version.Version=...".
package version

// Version is the program version.
var Version = "0.1.0-dev"
