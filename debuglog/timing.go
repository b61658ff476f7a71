package debuglog

import "time"

// Timing measures the duration of an operation for diagnostic logging.
type Timing struct {
	label string
	start time.Time
	done  bool
}

// StartTiming begins measuring an operation identified by label.
//
//	timing := debuglog.StartTiming("loadBundle")
//	defer timing.EndWithDefer()
func StartTiming(label string) *Timing {
	return &Timing{label: label, start: time.Now()}
}

// End logs the elapsed time at verbose level. Calling it more than once logs
// only the first time.
func (t *Timing) End() {
	if t == nil || t.done {
		return
	}
	t.done = true
	DebugLog("%s: completed in %s", t.label, time.Since(t.start).Round(time.Millisecond))
}

// EndWithDefer is End under a name that reads naturally in a defer statement.
// It is safe when End was already called explicitly on an early return path.
func (t *Timing) EndWithDefer() {
	t.End()
}
