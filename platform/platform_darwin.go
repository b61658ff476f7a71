//go:build darwin
// +build darwin

package platform

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// osVersion returns the Darwin kernel major version from sysctl.
func osVersion() (int, error) {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return 0, fmt.Errorf("sysctl kern.osrelease failed: %w", err)
	}
	return releaseMajor(release), nil
}

// isElevated reports whether the process runs as root.
func isElevated() bool {
	return os.Geteuid() == 0
}

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("open", path).Start()
}

// OpenURL opens a URL in the default browser
func OpenURL(url string) error {
	return exec.Command("open", url).Start()
}

// hasFileCapabilities is vacuously true on macOS (file capabilities are
// Linux-specific).
func hasFileCapabilities(path string, caps []string) bool {
	return true
}

// SetCapCommand returns "" on macOS (file capabilities are Linux-specific).
func SetCapCommand(path string, caps ...string) string {
	return ""
}
