package core

import (
	"reflect"
	"testing"
	"time"
)

func TestShell_PublishAppendsInOrder(t *testing.T) {
	messages := []any{}
	shell := NewShell(&messages)

	shell.Publish("a")
	shell.Publish("b")
	shell.Publish("c")

	if !reflect.DeepEqual(messages, []any{"a", "b", "c"}) {
		t.Fatalf("expected messages in emission order, got %v", messages)
	}
}

func TestShell_MergePreservesEmissionOrder(t *testing.T) {
	outer := []any{}
	outerShell := NewShell(&outer)
	outerShell.Publish("before")

	local := []any{}
	localShell := NewShell(&local)
	localShell.Publish("x")
	localShell.Publish("y")

	outerShell.Merge(localShell, nil)

	if !reflect.DeepEqual(outer, []any{"before", "x", "y"}) {
		t.Fatalf("expected merged order [before x y], got %v", outer)
	}
}

func TestShell_MergeMapsMessages(t *testing.T) {
	outer := []any{}
	outerShell := NewShell(&outer)

	local := []any{}
	localShell := NewShell(&local)
	localShell.Publish(1)
	localShell.Publish(2)

	outerShell.Merge(localShell, func(m any) any {
		return m.(int) * 10
	})

	if !reflect.DeepEqual(outer, []any{10, 20}) {
		t.Fatalf("expected mapped messages [10 20], got %v", outer)
	}
}

func TestShell_MergeCombinesInvalidation(t *testing.T) {
	outer := []any{}
	outerShell := NewShell(&outer)

	local := []any{}
	localShell := NewShell(&local)
	localShell.InvalidateLayout()

	if outerShell.IsLayoutInvalid() {
		t.Fatalf("outer shell must start valid")
	}
	outerShell.Merge(localShell, nil)
	if !outerShell.IsLayoutInvalid() {
		t.Fatalf("expected layout invalidation to propagate through merge")
	}
}

func TestShell_EarliestRedrawWins(t *testing.T) {
	messages := []any{}
	shell := NewShell(&messages)

	late := time.Now().Add(time.Second)
	early := time.Now().Add(time.Millisecond)

	shell.RequestRedraw(late)
	shell.RequestRedraw(early)

	at, ok := shell.RedrawRequest()
	if !ok || !at.Equal(early) {
		t.Fatalf("expected earliest redraw request to win, got %v ok=%v", at, ok)
	}
}
