// Package platform adapts the host operating system to the gate.Host contract
// and bundles a few per-OS helpers (version detection, privilege checks,
// opening URLs and folders).
//
// Permissions are modeled as named probes: an application registers a Probe
// under a permission name, and SystemHost evaluates it freshly on every
// Granted call. Unregistered permissions are never granted.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/TheEvilRoot/fynekit/debuglog"
	"github.com/TheEvilRoot/fynekit/gate"
	"github.com/TheEvilRoot/fynekit/internal/process"
)

// Probe reports whether a named capability is currently satisfied.
type Probe func() bool

var (
	probeMu sync.RWMutex
	probes  = make(map[string]Probe)

	versionOnce sync.Once
	versionVal  int
)

// RegisterProbe binds a permission name to a probe. Registering a nil probe
// removes the name. The probe runs on every Granted call, so keep it cheap.
func RegisterProbe(name string, p Probe) {
	probeMu.Lock()
	defer probeMu.Unlock()
	if p == nil {
		delete(probes, name)
		return
	}
	probes[name] = p
}

// UnregisterProbe removes a previously registered probe.
func UnregisterProbe(name string) {
	RegisterProbe(name, nil)
}

// Version returns the host platform level: kernel major on Linux, OS major
// on macOS, build number on Windows. Returns 0 when detection fails.
// The value is detected once and cached.
func Version() int {
	versionOnce.Do(func() {
		v, err := osVersion()
		if err != nil {
			debuglog.WarnLog("Version: detection failed: %v", err)
			return
		}
		versionVal = v
		debuglog.DebugLog("Version: detected platform version %d", v)
	})
	return versionVal
}

// SystemHost is a gate.Host backed by the running operating system: its
// version is the detected platform level and its permissions are the
// registered probes.
type SystemHost struct{}

// Version implements gate.Host.
func (SystemHost) Version() int { return Version() }

// Granted implements gate.Host. Each call re-evaluates the probe registered
// under the permission name; names without a probe are never granted.
func (SystemHost) Granted(permission string) bool {
	probeMu.RLock()
	probe, ok := probes[permission]
	probeMu.RUnlock()
	if !ok {
		debuglog.DebugLog("Granted: no probe registered for permission %q", permission)
		return false
	}
	return probe()
}

// Host returns the system-backed gate host.
func Host() gate.Host {
	return SystemHost{}
}

// ProcessProbe grants the capability while a process with the given
// executable name is running. Matching is case-insensitive.
func ProcessProbe(name string) Probe {
	return func() bool {
		running, err := process.Running(name)
		if err != nil {
			debuglog.WarnLog("ProcessProbe: check for %q failed: %v", name, err)
			return false
		}
		return running
	}
}

// EnvProbe grants the capability while the environment variable is set to a
// non-empty value.
func EnvProbe(key string) Probe {
	return func() bool {
		return os.Getenv(key) != ""
	}
}

// ElevatedProbe grants the capability when the current process runs with
// elevated privileges (root on Unix, elevated token on Windows).
func ElevatedProbe() Probe {
	return func() bool {
		return isElevated()
	}
}

// FileCapabilityProbe grants the capability when the file at path exists and
// carries all the named file capabilities (e.g. "cap_net_admin"). On systems
// without file capabilities only existence is checked.
func FileCapabilityProbe(path string, caps ...string) Probe {
	return func() bool {
		if _, err := os.Stat(path); err != nil {
			return false
		}
		return hasFileCapabilities(path, caps)
	}
}

// CheckAndSuggest checks the file capabilities of path and returns a message
// with the command to grant the missing ones, or "" when nothing needs to be
// done. Missing files are skipped so the check can run before installation.
func CheckAndSuggest(path string, caps ...string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ""
	}
	if hasFileCapabilities(path, caps) {
		return ""
	}
	return fmt.Sprintf(
		"%s requires additional privileges.\n\n"+
			"To avoid entering a password every time, grant them once:\n\n%s",
		filepath.Base(path), SetCapCommand(path, caps...),
	)
}
