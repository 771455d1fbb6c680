// internal/version/version.go
package version

// Version is the psdm release version. Overridable at build time:
//
//	go build -ldflags "-X psdm/internal/version.Version=…"
var Version = "0.3.0"
