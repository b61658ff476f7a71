// Package dialogs wraps fyne.io/fyne/v2/dialog with goroutine-safe Show
// helpers and a few composed dialogs: list selection, text input, custom
// layouts and auto-hiding toasts.
//
// Every Show* function performs its UI work inside fyne.Do, so it is safe to
// call from any goroutine. The New* builders construct without showing and
// must run on the UI thread.
package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowMessage shows an information dialog to the user
func ShowMessage(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}

// ShowError shows an error dialog to the user
func ShowError(window fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, window)
	})
}

// ShowErrorText shows an error dialog with a text message
func ShowErrorText(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %s", title, message), window)
	})
}

// ShowConfirm shows a confirmation dialog
func ShowConfirm(window fyne.Window, title, message string, onConfirm func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, onConfirm, window)
	})
}

// ShowCustom shows a custom dialog with custom content
func ShowCustom(window fyne.Window, title, dismiss string, content fyne.CanvasObject) {
	fyne.Do(func() {
		dialog.ShowCustom(title, dismiss, content, window)
	})
}

// ErrorBanner builds a disabled entry with error styling for inline error
// display in forms. Unlike the Show helpers it is a plain builder and must
// run on the UI thread.
func ErrorBanner(message string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText("❌ " + message)
	entry.Disable()
	entry.Wrapping = fyne.TextWrapWord
	return entry
}
