package viewutil

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// SlideTo animates obj from its current position to target and invokes
// onDone (if non-nil) when the final position is reached.
func SlideTo(obj fyne.CanvasObject, target fyne.Position, d time.Duration, onDone func()) *fyne.Animation {
	anim := slideAnimation(obj, target, d, onDone)
	anim.Start()
	return anim
}

// SlideIn shows obj at start and slides it to the position it occupied when
// the call was made.
func SlideIn(obj fyne.CanvasObject, start fyne.Position, d time.Duration, onDone func()) *fyne.Animation {
	target := obj.Position()
	obj.Move(start)
	obj.Show()
	return SlideTo(obj, target, d, onDone)
}

// SlideOut slides obj to target and hides it once the slide completes.
func SlideOut(obj fyne.CanvasObject, target fyne.Position, d time.Duration, onDone func()) *fyne.Animation {
	return SlideTo(obj, target, d, func() {
		obj.Hide()
		if onDone != nil {
			onDone()
		}
	})
}

// Resize animates the size of obj from its current size to target and
// invokes onDone (if non-nil) when the final size is reached.
func Resize(obj fyne.CanvasObject, target fyne.Size, d time.Duration, onDone func()) *fyne.Animation {
	anim := resizeAnimation(obj, target, d, onDone)
	anim.Start()
	return anim
}

// Flash pulses the fill colour of rect to highlight and back, leaving the
// original colour restored by the auto-reverse.
func Flash(rect *canvas.Rectangle, highlight color.Color, d time.Duration) *fyne.Animation {
	anim := flashAnimation(rect, highlight, d)
	anim.Start()
	return anim
}

func slideAnimation(obj fyne.CanvasObject, target fyne.Position, d time.Duration, onDone func()) *fyne.Animation {
	anim := canvas.NewPositionAnimation(obj.Position(), target, d, func(p fyne.Position) {
		obj.Move(p)
		if p == target && onDone != nil {
			onDone()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	return anim
}

func resizeAnimation(obj fyne.CanvasObject, target fyne.Size, d time.Duration, onDone func()) *fyne.Animation {
	anim := canvas.NewSizeAnimation(obj.Size(), target, d, func(s fyne.Size) {
		obj.Resize(s)
		if s == target && onDone != nil {
			onDone()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	return anim
}

func flashAnimation(rect *canvas.Rectangle, highlight color.Color, d time.Duration) *fyne.Animation {
	base := rect.FillColor
	if base == nil {
		base = color.Transparent
	}
	anim := canvas.NewColorRGBAAnimation(base, highlight, d, func(c color.Color) {
		rect.FillColor = c
		rect.Refresh()
	})
	anim.AutoReverse = true
	anim.Curve = fyne.AnimationEaseInOut
	return anim
}
