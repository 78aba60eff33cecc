// internal/version/version.go
package version

// Version is the release version reported by --version.
const Version = "0.1.0"
