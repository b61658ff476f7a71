// Package adapter bridges index-addressable data to Fyne's view-recycling
// widget.List without subclassing the widget.
//
// The caller supplies three things: a Source (count plus item accessor), a
// create function producing one row from the layout template, and a bind
// function populating a recycled row with the item at a position. The adapter
// holds no copy of the data: the source is consulted freshly on every count
// and every bind, so external mutations become visible on the next refresh.
//
// All methods are driven by the Fyne UI thread, the same way widget.List
// drives its callbacks, so the adapter keeps no locks.
package adapter

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Source is an index-addressable collection of items to display.
// Implementations stay owned by the caller; the adapter never mutates them.
type Source[T any] interface {
	// Len reports the current number of items.
	Len() int
	// At returns the item at index. Indexes are passed through from the
	// list without validation, so out-of-range handling is the source's
	// business.
	At(index int) T
}

// Funcs adapts a pair of closures to the Source interface.
type Funcs[T any] struct {
	LenFunc func() int
	AtFunc  func(index int) T
}

func (f Funcs[T]) Len() int       { return f.LenFunc() }
func (f Funcs[T]) At(index int) T { return f.AtFunc(index) }

// Holder wraps one recyclable row for the duration of its binds. The same
// Holder is handed to every bind of the same row object.
type Holder struct {
	// Root is the canvas object built from the row template.
	Root fyne.CanvasObject
}

// BindFunc populates a recycled row with the item at a position.
type BindFunc[T any] func(h *Holder, position int, item T)

// Adapter feeds a Source into the three widget.List callbacks.
type Adapter[T any] struct {
	source  Source[T]
	create  func() fyne.CanvasObject
	bind    BindFunc[T]
	holders map[fyne.CanvasObject]*Holder
}

// New returns an adapter over source. create builds one fresh row from the
// layout template; bind fills a row with an item.
func New[T any](source Source[T], create func() fyne.CanvasObject, bind BindFunc[T]) *Adapter[T] {
	return &Adapter[T]{
		source:  source,
		create:  create,
		bind:    bind,
		holders: make(map[fyne.CanvasObject]*Holder),
	}
}

// NewFuncs returns an adapter over a closure-backed source.
func NewFuncs[T any](count func() int, at func(index int) T, create func() fyne.CanvasObject, bind BindFunc[T]) *Adapter[T] {
	return New[T](Funcs[T]{LenFunc: count, AtFunc: at}, create, bind)
}

// Count reports the current number of items. The source is consulted on every
// call, never cached.
func (a *Adapter[T]) Count() int {
	return a.source.Len()
}

// CreateItem instantiates one row from the template and registers its holder.
func (a *Adapter[T]) CreateItem() fyne.CanvasObject {
	obj := a.create()
	a.holders[obj] = &Holder{Root: obj}
	return obj
}

// BindItem fills the row obj with the item currently at position id. Rows
// that did not come from CreateItem get a holder on first bind.
func (a *Adapter[T]) BindItem(id widget.ListItemID, obj fyne.CanvasObject) {
	h, ok := a.holders[obj]
	if !ok {
		h = &Holder{Root: obj}
		a.holders[obj] = h
	}
	a.bind(h, id, a.source.At(id))
}

// NewList builds a widget.List wired to this adapter's callbacks.
func (a *Adapter[T]) NewList() *widget.List {
	return widget.NewList(a.Count, a.CreateItem, a.BindItem)
}
