package dialogs

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/TheEvilRoot/fynekit/internal/constants"
)

// Notify sends a system notification.
func Notify(app fyne.App, title, message string) {
	app.SendNotification(&fyne.Notification{Title: title, Content: message})
}

// ShowToast sends a system notification and shows a dialog that hides itself
// after duration. A non-positive duration selects the default.
func ShowToast(app fyne.App, window fyne.Window, title, message string, duration time.Duration) {
	if duration <= 0 {
		duration = constants.DefaultToastDuration
	}
	Notify(app, title, message)
	fyne.Do(func() {
		d := dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), window)
		d.Show()
		go func() {
			time.Sleep(duration)
			fyne.Do(func() { d.Hide() })
		}()
	})
}
