package cell

import "testing"

func TestCell_BorrowReleaseReborrow(t *testing.T) {
	c := New(42)

	ref := c.BorrowMut("first")
	if got := ref.Get(); got != 42 {
		t.Fatalf("expected borrowed value 42, got %d", got)
	}
	if !c.IsBorrowed() {
		t.Fatalf("expected cell to report a live borrow")
	}

	ref.Release()
	if c.IsBorrowed() {
		t.Fatalf("expected cell to be free after release")
	}

	ref2 := c.BorrowMut("second")
	ref2.Set(7)
	ref2.Release()

	c.With("check", func(v int) {
		if v != 7 {
			t.Fatalf("expected value 7 after Set, got %d", v)
		}
	})
}

func TestCell_DoubleBorrowPanics(t *testing.T) {
	c := New("value")
	ref := c.BorrowMut("holder-a")
	defer ref.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected second borrow to panic while first is live")
		}
	}()
	c.BorrowMut("holder-b")
}

func TestCell_UseAfterReleasePanics(t *testing.T) {
	c := New(1)
	ref := c.BorrowMut("holder")
	ref.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get on released borrow to panic")
		}
	}()
	ref.Get()
}

func TestCell_ReleaseTwiceIsNoop(t *testing.T) {
	c := New(1)
	ref := c.BorrowMut("holder")
	ref.Release()
	ref.Release()

	// A later borrow by someone else must not be released by the stale ref.
	ref2 := c.BorrowMut("next")
	ref.Release()
	if !c.IsBorrowed() {
		t.Fatalf("stale release must not end an unrelated borrow")
	}
	ref2.Release()
}

func TestCell_WithReleasesOnPanic(t *testing.T) {
	c := New(1)

	func() {
		defer func() { _ = recover() }()
		c.With("panicking", func(int) {
			panic("boom")
		})
	}()

	if c.IsBorrowed() {
		t.Fatalf("expected borrow to be released after panic inside With")
	}
}
