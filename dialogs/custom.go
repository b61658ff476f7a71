package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewCustom builds a dialog from a main content area and a bottom button row,
// assembling the Border layout itself. A non-empty dismissText adds a close
// button on the left of the row and makes ESC behave like pressing it; the
// parent window's key handler is saved and restored when the dialog closes.
func NewCustom(title string, mainContent, buttons fyne.CanvasObject, dismissText string, parent fyne.Window) dialog.Dialog {
	// Declare dialog variable first so it can be used in button callbacks
	var d dialog.Dialog

	if buttons == nil {
		buttons = container.NewHBox()
	}

	if dismissText != "" {
		closeButton := widget.NewButton(dismissText, func() {
			if d != nil {
				d.Hide()
			}
		})
		buttons = container.NewBorder(nil, nil, closeButton, buttons, nil)
	}

	content := container.NewBorder(
		nil,         // top
		buttons,     // bottom
		nil,         // left
		nil,         // right
		mainContent, // center
	)

	d = dialog.NewCustomWithoutButtons(title, content, parent)

	if dismissText != "" {
		originalOnTypedKey := parent.Canvas().OnTypedKey()
		restore := func() {
			if originalOnTypedKey != nil {
				parent.Canvas().SetOnTypedKey(originalOnTypedKey)
			} else {
				parent.Canvas().SetOnTypedKey(nil)
			}
		}

		parent.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
			if key.Name == fyne.KeyEscape && d != nil {
				d.Hide()
				restore()
				return
			}
			// Forward other keys to the original handler
			if originalOnTypedKey != nil {
				originalOnTypedKey(key)
			}
		})

		// Restore the handler when the dialog closes by any path
		d.SetOnClosed(restore)
	}

	return d
}
