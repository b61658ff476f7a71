package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NewInput builds a single-line text input dialog. Submitting (button or
// Enter) hides the dialog and reports the entered text; Cancel and ESC report
// nothing.
func NewInput(window fyne.Window, title, placeholder string, onSubmit func(text string)) dialog.Dialog {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)

	// Declare dialog variable first so it can be used in the submit path
	var d dialog.Dialog

	submit := func() {
		if d != nil {
			d.Hide()
		}
		if onSubmit != nil {
			onSubmit(entry.Text)
		}
	}

	entry.OnSubmitted = func(string) { submit() }

	submitButton := widget.NewButton("Submit", submit)
	submitButton.Importance = widget.HighImportance

	buttons := container.NewHBox(layout.NewSpacer(), submitButton)

	d = NewCustom(title, entry, buttons, "Cancel", window)
	d.Resize(fyne.NewSize(360, 150))
	return d
}

// ShowInput shows a text input dialog from any goroutine.
func ShowInput(window fyne.Window, title, placeholder string, onSubmit func(text string)) {
	fyne.Do(func() {
		NewInput(window, title, placeholder, onSubmit).Show()
	})
}
