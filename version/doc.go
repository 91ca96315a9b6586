// Package version exposes build metadata for the /info endpoint.
//
// Values are injected at link time and fall back to the VCS stamp the Go
// toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/sttproxy/version.Version=1.2.0"
package version
