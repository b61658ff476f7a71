// Package textwatch wires change listeners onto widget.Entry: chaining,
// debouncing and input filtering without hand-managing the previous handler.
package textwatch

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"fyne.io/fyne/v2/widget"
)

// RuneFilter reports whether a rune is allowed.
type RuneFilter func(r rune) bool

// Printable accepts printable runes, including the space character.
func Printable(r rune) bool { return unicode.IsPrint(r) }

// NoSpaces rejects all whitespace.
func NoSpaces(r rune) bool { return !unicode.IsSpace(r) }

// Digits accepts decimal digits only.
func Digits(r rune) bool { return unicode.IsDigit(r) }

// Filter returns s with all runes rejected by allow removed.
func Filter(s string, allow RuneFilter) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allow(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Append chains fn to run after the entry's current OnChanged handler.
func Append(entry *widget.Entry, fn func(text string)) {
	prev := entry.OnChanged
	entry.OnChanged = func(text string) {
		if prev != nil {
			prev(text)
		}
		fn(text)
	}
}

// Debounce invokes fn with the latest text once no change has arrived for
// delay. Prior OnChanged handlers still fire on every change. fn runs on a
// timer goroutine, so wrap any UI work in fyne.Do. The returned cancel stops
// a pending invocation.
func Debounce(entry *widget.Entry, delay time.Duration, fn func(text string)) (cancel func()) {
	var mu sync.Mutex
	var timer *time.Timer

	Append(entry, func(text string) {
		mu.Lock()
		defer mu.Unlock()

		// Cancel previous timer if it exists
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			fn(text)
		})
	})

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
}

// Restrict drops runes rejected by allow as the entry's text changes,
// covering both typing and programmatic SetText. Handlers installed before
// Restrict only ever observe filtered text: a dirty change triggers one
// corrective SetText, which re-enters the chain with the clean string.
// Install Restrict after any other handlers.
func Restrict(entry *widget.Entry, allow RuneFilter) {
	prev := entry.OnChanged
	entry.OnChanged = func(text string) {
		filtered := Filter(text, allow)
		if filtered != text {
			entry.SetText(filtered)
			return
		}
		if prev != nil {
			prev(text)
		}
	}
}

// Trimmed wraps fn so it receives whitespace-trimmed text.
func Trimmed(fn func(text string)) func(string) {
	return func(text string) {
		fn(strings.TrimSpace(text))
	}
}
