//go:build cgo

package viewutil

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

func TestSetVisibleAndToggle(t *testing.T) {
	label := widget.NewLabel("x")

	SetVisible(label, false)
	if label.Visible() {
		t.Error("Expected hidden after SetVisible(false)")
	}

	SetVisible(label, true)
	if !label.Visible() {
		t.Error("Expected visible after SetVisible(true)")
	}

	if got := Toggle(label); got || label.Visible() {
		t.Error("Toggle on a visible object should hide it and report false")
	}
	if got := Toggle(label); !got || !label.Visible() {
		t.Error("Toggle on a hidden object should show it and report true")
	}
}

func TestShowAllHideAll(t *testing.T) {
	objs := []fyne.CanvasObject{
		widget.NewLabel("a"),
		widget.NewLabel("b"),
		widget.NewLabel("c"),
	}

	HideAll(objs...)
	for i, obj := range objs {
		if obj.Visible() {
			t.Errorf("Object %d still visible after HideAll", i)
		}
	}

	ShowAll(objs...)
	for i, obj := range objs {
		if !obj.Visible() {
			t.Errorf("Object %d still hidden after ShowAll", i)
		}
	}
}

// Animations are exercised by driving Tick directly, the way the animation
// runner delivers frames, so no driver is needed.
func TestSlideAnimation(t *testing.T) {
	label := widget.NewLabel("moving")
	label.Move(fyne.NewPos(0, 0))
	target := fyne.NewPos(100, 40)

	done := false
	anim := slideAnimation(label, target, 50*time.Millisecond, func() { done = true })

	anim.Tick(0.5)
	if done {
		t.Error("Completion callback fired before the final frame")
	}

	anim.Tick(1)
	if label.Position() != target {
		t.Errorf("Expected final position %v, got %v", target, label.Position())
	}
	if !done {
		t.Error("Completion callback did not fire on the final frame")
	}
}

func TestResizeAnimation(t *testing.T) {
	label := widget.NewLabel("growing")
	label.Resize(fyne.NewSize(10, 10))
	target := fyne.NewSize(200, 80)

	done := false
	anim := resizeAnimation(label, target, 50*time.Millisecond, func() { done = true })

	anim.Tick(1)
	if label.Size() != target {
		t.Errorf("Expected final size %v, got %v", target, label.Size())
	}
	if !done {
		t.Error("Completion callback did not fire on the final frame")
	}
}

func TestFlashAnimation(t *testing.T) {
	rect := canvas.NewRectangle(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	highlight := color.NRGBA{R: 255, G: 0, B: 0, A: 255}

	anim := flashAnimation(rect, highlight, 50*time.Millisecond)
	if !anim.AutoReverse {
		t.Error("Flash should auto-reverse back to the base colour")
	}

	anim.Tick(1)
	r, g, b, _ := rect.FillColor.RGBA()
	hr, hg, hb, _ := highlight.RGBA()
	if r != hr || g != hg || b != hb {
		t.Errorf("Expected highlight colour at peak, got %v", rect.FillColor)
	}

	anim.Tick(0)
	r, g, b, _ = rect.FillColor.RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Expected base colour restored, got %v", rect.FillColor)
	}
}

func TestSlideOutHides(t *testing.T) {
	label := widget.NewLabel("leaving")
	label.Move(fyne.NewPos(50, 50))
	target := fyne.NewPos(-100, 50)

	done := false
	anim := slideAnimation(label, target, 50*time.Millisecond, func() {
		// SlideOut composes hiding into the completion callback.
		label.Hide()
		done = true
	})

	anim.Tick(1)
	if label.Visible() {
		t.Error("Expected object hidden after slide-out completion")
	}
	if !done {
		t.Error("Completion callback did not fire")
	}
}
