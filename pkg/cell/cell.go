// Package cell provides a runtime-checked exclusive-access cell.
//
// A Cell wraps a value that must only ever have a single writer at a time,
// but whose writer lifetime spans multiple externally-driven calls (for
// example, a frame-scoped overlay holding the content cache it was resolved
// from). Acquiring the cell while a borrow is live is a programming error,
// not a transient condition, so it fails immediately with a panic instead of
// blocking. Cells are confined to the UI thread; there is no locking.
package cell

import "fmt"

// Cell guards exclusive access to a value.
type Cell[T any] struct {
	value  T
	holder string // non-empty while borrowed
}

// New creates a cell owning the given value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// BorrowMut acquires exclusive access to the value. The returned Ref must be
// released before the cell can be borrowed again. Panics if a borrow is
// already live: two writers would let the value be replaced out from under
// code that still holds it.
//
// The holder string names the acquiring call path and appears in the panic
// message when a conflicting borrow is detected.
func (c *Cell[T]) BorrowMut(holder string) *Ref[T] {
	if c.holder != "" {
		panic(fmt.Sprintf(
			"cell: %q attempted to borrow a cell already held by %q",
			holder, c.holder,
		))
	}
	if holder == "" {
		holder = "anonymous"
	}
	c.holder = holder
	return &Ref[T]{cell: c}
}

// With borrows the cell for the duration of f and releases it afterwards,
// even if f panics.
func (c *Cell[T]) With(holder string, f func(T)) {
	ref := c.BorrowMut(holder)
	defer ref.Release()
	f(ref.Get())
}

// IsBorrowed reports whether a borrow is currently live.
func (c *Cell[T]) IsBorrowed() bool {
	return c.holder != ""
}

// Ref is a live exclusive borrow of a cell's value.
type Ref[T any] struct {
	cell     *Cell[T]
	released bool
}

// Get returns the borrowed value. Panics if the borrow was released: a
// released reference must never reach the value again.
func (r *Ref[T]) Get() T {
	if r.released {
		panic("cell: use of released borrow")
	}
	return r.cell.value
}

// Set replaces the value inside the cell. Panics if the borrow was released.
func (r *Ref[T]) Set(value T) {
	if r.released {
		panic("cell: use of released borrow")
	}
	r.cell.value = value
}

// Release ends the borrow, allowing the cell to be borrowed again.
// Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.holder = ""
}
