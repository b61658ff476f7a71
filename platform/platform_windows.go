//go:build windows
// +build windows

package platform

import (
	"os/exec"

	"golang.org/x/sys/windows"
)

// osVersion returns the Windows build number.
func osVersion() (int, error) {
	info := windows.RtlGetVersion()
	return int(info.BuildNumber), nil
}

// isElevated reports whether the process token is elevated.
func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("explorer", path).Start()
}

// OpenURL opens a URL in the default browser
func OpenURL(url string) error {
	return exec.Command("explorer", url).Start()
}

// hasFileCapabilities is vacuously true on Windows (file capabilities are
// Linux-specific).
func hasFileCapabilities(path string, caps []string) bool {
	return true
}

// SetCapCommand returns "" on Windows (file capabilities are Linux-specific).
func SetCapCommand(path string, caps ...string) string {
	return ""
}
