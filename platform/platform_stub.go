//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package platform

import "errors"

// errOpenNotSupported is returned by OpenFolder and OpenURL on platforms
// without a known opener command.
var errOpenNotSupported = errors.New("opening files and URLs not supported on this platform")

// osVersion reports 0 on platforms without a detection path.
func osVersion() (int, error) {
	return 0, nil
}

// isElevated reports false on platforms without an elevation concept.
func isElevated() bool {
	return false
}

// OpenFolder is not supported on this platform.
func OpenFolder(path string) error {
	return errOpenNotSupported
}

// OpenURL is not supported on this platform.
func OpenURL(url string) error {
	return errOpenNotSupported
}

// hasFileCapabilities is vacuously true outside Linux.
func hasFileCapabilities(path string, caps []string) bool {
	return true
}

// SetCapCommand returns "" outside Linux.
func SetCapCommand(path string, caps ...string) string {
	return ""
}
