package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/TheEvilRoot/fynekit/adapter"
)

// NewList builds a selection dialog over items. Picking an item hides the
// dialog and reports its index and value; Cancel reports nothing.
func NewList(window fyne.Window, title string, items []string, onPick func(index int, item string)) dialog.Dialog {
	a := adapter.NewFuncs(
		func() int { return len(items) },
		func(i int) string { return items[i] },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(h *adapter.Holder, position int, item string) {
			h.Root.(*widget.Label).SetText(item)
		},
	)
	list := a.NewList()

	// Declare dialog variable first so it can be used in the selection callback
	var d dialog.Dialog

	list.OnSelected = func(id widget.ListItemID) {
		list.UnselectAll()
		if d != nil {
			d.Hide()
		}
		if onPick != nil {
			onPick(id, items[id])
		}
	}

	scroll := container.NewScroll(list)
	scroll.SetMinSize(fyne.NewSize(300, 150))

	d = dialog.NewCustom(title, "Cancel", scroll, window)
	return d
}

// ShowList shows a selection dialog over items from any goroutine.
func ShowList(window fyne.Window, title string, items []string, onPick func(index int, item string)) {
	fyne.Do(func() {
		NewList(window, title, items, onPick).Show()
	})
}
