// Package viewutil provides visibility toggles and small animation shortcuts
// for canvas objects. All functions are UI-thread helpers in the manner of
// widget methods: call them from the Fyne main loop or inside fyne.Do.
package viewutil

import (
	"fyne.io/fyne/v2"
)

// SetVisible shows or hides obj.
func SetVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// Toggle flips the visibility of obj and reports the new state.
func Toggle(obj fyne.CanvasObject) bool {
	visible := !obj.Visible()
	SetVisible(obj, visible)
	return visible
}

// ShowAll shows every given object.
func ShowAll(objs ...fyne.CanvasObject) {
	for _, obj := range objs {
		obj.Show()
	}
}

// HideAll hides every given object.
func HideAll(objs ...fyne.CanvasObject) {
	for _, obj := range objs {
		obj.Hide()
	}
}
