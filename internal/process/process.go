package process

import (
	"strings"

	"github.com/mitchellh/go-ps"
)

// Info is a small struct representing a running process.
// It is intentionally minimal to keep cross-platform compatibility.
type Info struct {
	PID  int
	Name string
}

// List returns the running processes in a platform-agnostic format.
// It wraps github.com/mitchellh/go-ps internally and normalizes the result.
func List() ([]Info, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(procs))
	for _, p := range procs {
		out = append(out, Info{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// Find looks up a process by PID and reports whether it was found.
func Find(pid int) (Info, bool, error) {
	procs, err := List()
	if err != nil {
		return Info{}, false, err
	}
	for _, p := range procs {
		if p.PID == pid {
			return p, true, nil
		}
	}
	return Info{}, false, nil
}

// Running reports whether any process with the given executable name exists.
// The comparison is case-insensitive because Windows reports names with
// varying case.
func Running(name string) (bool, error) {
	procs, err := List()
	if err != nil {
		return false, err
	}
	for _, p := range procs {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
