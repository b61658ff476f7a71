//go:build linux
// +build linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// osVersion returns the kernel major version from uname.
func osVersion() (int, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0, fmt.Errorf("uname failed: %w", err)
	}
	return releaseMajor(unix.ByteSliceToString(uts.Release[:])), nil
}

// isElevated reports whether the process runs as root.
func isElevated() bool {
	return os.Geteuid() == 0
}

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("xdg-open", path).Start()
}

// OpenURL opens a URL in the default browser
func OpenURL(url string) error {
	return exec.Command("xdg-open", url).Start()
}

// hasFileCapabilities checks with getcap that the file carries all the named
// capabilities. With no names it checks that any capability is set.
func hasFileCapabilities(path string, caps []string) bool {
	output, err := exec.Command("getcap", path).Output()
	if err != nil {
		// getcap returns an error if no capabilities are set
		return false
	}

	outputStr := string(output)
	if len(caps) == 0 {
		return strings.Contains(outputStr, "cap_")
	}
	for _, c := range caps {
		if !strings.Contains(outputStr, c) {
			return false
		}
	}
	return true
}

// SetCapCommand returns the command to set the named capabilities on a file.
func SetCapCommand(path string, caps ...string) string {
	if len(caps) == 0 {
		caps = []string{"cap_net_admin", "cap_net_bind_service"}
	}
	return fmt.Sprintf("sudo setcap '%s=+ep' %s", strings.Join(caps, ","), path)
}
