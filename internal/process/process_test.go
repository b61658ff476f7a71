package process

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListContainsSelf(t *testing.T) {
	list, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("Expected at least one running process")
	}

	pid := os.Getpid()
	for _, info := range list {
		if info.PID == pid {
			return
		}
	}
	t.Errorf("Process list does not contain own PID %d", pid)
}

func TestFindSelf(t *testing.T) {
	info, found, err := Find(os.Getpid())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !found {
		t.Fatal("Expected to find own process")
	}
	if info.PID != os.Getpid() {
		t.Errorf("Expected PID %d, got %d", os.Getpid(), info.PID)
	}
	if info.Name == "" {
		t.Error("Expected a non-empty executable name")
	}
}

func TestRunningSelf(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable failed: %v", err)
	}
	name := filepath.Base(exe)

	running, err := Running(name)
	if err != nil {
		t.Fatalf("Running failed: %v", err)
	}
	if !running {
		t.Errorf("Expected %q to be reported as running", name)
	}

	// Matching is case-insensitive.
	running, err = Running(strings.ToUpper(name))
	if err != nil {
		t.Fatalf("Running failed: %v", err)
	}
	if !running {
		t.Errorf("Expected case-insensitive match for %q", strings.ToUpper(name))
	}
}

func TestRunningAbsent(t *testing.T) {
	running, err := Running("fynekit-no-such-process")
	if err != nil {
		t.Fatalf("Running failed: %v", err)
	}
	if running {
		t.Error("Nonexistent process should not be reported as running")
	}
}
