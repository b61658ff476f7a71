// Package gate runs blocks of code only when the host platform satisfies a
// minimum-version requirement and a set of runtime permissions. Callers either
// inspect the Decision returned by Check or hand success/denial callbacks to
// Run; exactly one of the two callbacks fires per invocation.
package gate

import (
	"github.com/TheEvilRoot/fynekit/debuglog"
)

// Reason is the enumerated cause for why a gated block did or did not run.
type Reason int

const (
	// OK means every requirement was satisfied and the block ran.
	OK Reason = iota
	// VersionTooLow means the host version is below the required minimum.
	// Permissions are not consulted in this case.
	VersionTooLow
	// PermissionDenied means at least one required permission is not granted.
	PermissionDenied
)

// String returns the reason name for logs and error messages.
func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case VersionTooLow:
		return "version too low"
	case PermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// Host is the platform contract consulted by Check. Version returns the
// platform level as a single integer (kernel major, build number, API level)
// and Granted reports whether a named permission is currently held.
// Implementations must answer fresh on every call; the gate never caches.
type Host interface {
	Version() int
	Granted(permission string) bool
}

// Requirement describes what a block needs from the host. A MinVersion of
// zero or below means no version floor. Permissions may be empty and are
// checked in declared order.
type Requirement struct {
	MinVersion  int
	Permissions []string
}

// Require builds a Requirement from a version floor and permission names.
func Require(minVersion int, permissions ...string) Requirement {
	return Requirement{MinVersion: minVersion, Permissions: permissions}
}

// Decision is the outcome of evaluating a Requirement against a Host.
// Version echoes the host version that was consulted. Permission names the
// first permission found missing when Reason is PermissionDenied, and is
// empty otherwise.
type Decision struct {
	Reason     Reason
	Version    int
	Permission string
}

// Allowed reports whether the requirement was fully satisfied.
func (d Decision) Allowed() bool {
	return d.Reason == OK
}

// Check evaluates req against h. The version floor is checked first and a
// failure short-circuits: no permission is consulted. Otherwise permissions
// are checked in order and the first one not granted decides the outcome.
// Check has no side effects beyond diagnostic logging.
func Check(h Host, req Requirement) Decision {
	version := h.Version()
	if req.MinVersion > 0 && version < req.MinVersion {
		debuglog.DebugLog("gate: version %d below required %d", version, req.MinVersion)
		return Decision{Reason: VersionTooLow, Version: version}
	}
	for _, perm := range req.Permissions {
		if !h.Granted(perm) {
			debuglog.DebugLog("gate: permission %q not granted", perm)
			return Decision{Reason: PermissionDenied, Version: version, Permission: perm}
		}
	}
	return Decision{Reason: OK, Version: version}
}

// Run executes block when Check allows it and otherwise calls denied with the
// Decision. Exactly one of the two callbacks is invoked, each at most once.
// Either callback may be nil, which turns that path into a no-op.
func Run(h Host, req Requirement, block func(), denied func(Decision)) {
	decision := Check(h, req)
	if decision.Allowed() {
		if block != nil {
			block()
		}
		return
	}
	if denied != nil {
		denied(decision)
	}
}
