package widgets

import (
	"reflect"
	"testing"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
	"github.com/go-quill/quill/pkg/uitest"
)

type probeState struct{}

// probeWidget records layout and event traffic so tests can observe what the
// responsive cache actually did.
type probeWidget struct {
	core.Base
	layoutCalls int
	lastLimits  layout.Limits
	onEvent     func(ev event.Event, shell *core.Shell) event.Status
	overlayFn   func() core.Overlay
}

func (p *probeWidget) Tag() core.Tag {
	return core.TagOf[*probeState]()
}

func (p *probeWidget) State() any {
	return &probeState{}
}

func (p *probeWidget) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	p.layoutCalls++
	p.lastLimits = limits
	return layout.NewNode(limits.Max())
}

func (p *probeWidget) Draw(*core.Tree, renderer.Renderer, renderer.Style, layout.Layout, mouse.Cursor, geometry.Rect) {
}

func (p *probeWidget) OnEvent(tree *core.Tree, ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell, viewport geometry.Rect) event.Status {
	if p.onEvent != nil {
		return p.onEvent(ev, shell)
	}
	return event.Ignored
}

func (p *probeWidget) Overlay(tree *core.Tree, lay layout.Layout, r renderer.Renderer, translation geometry.Offset) *core.OverlayElement {
	if p.overlayFn != nil {
		if ov := p.overlayFn(); ov != nil {
			return core.NewOverlayElement(lay.Position(), ov)
		}
	}
	return nil
}

// invalidatingOverlay raises a layout invalidation on every event.
type invalidatingOverlay struct {
	core.OverlayBase
	size geometry.Size
}

func (o *invalidatingOverlay) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return layout.NewNode(o.size)
}

func (o *invalidatingOverlay) Draw(renderer.Renderer, renderer.Style, layout.Layout, mouse.Cursor) {
}

func (o *invalidatingOverlay) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool {
	return lay.Bounds().Contains(position)
}

func (o *invalidatingOverlay) OnEvent(ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell) event.Status {
	shell.InvalidateLayout()
	return event.Captured
}

type responsiveEnv struct {
	builds int
	built  []*probeWidget
	w      *Responsive
	tree   *core.Tree
	r      *uitest.Renderer
	node   *layout.Node
}

func newResponsiveEnv(configure func(p *probeWidget)) *responsiveEnv {
	env := &responsiveEnv{r: uitest.NewRenderer()}
	env.w = NewResponsive(func(size geometry.Size) core.Widget {
		env.builds++
		p := &probeWidget{}
		if configure != nil {
			configure(p)
		}
		env.built = append(env.built, p)
		return p
	})
	env.tree = core.NewTree(env.w)
	return env
}

func (e *responsiveEnv) layoutAt(size geometry.Size) layout.Layout {
	node := e.w.Layout(e.tree, e.r, layout.NewLimits(geometry.Size{}, size))
	e.node = &node
	return layout.NewLayout(e.node)
}

func (e *responsiveEnv) draw(size geometry.Size) {
	viewport := geometry.RectFromOffsetSize(geometry.Offset{}, size)
	e.w.Draw(e.tree, e.r, renderer.Style{}, e.layoutAt(size), mouse.UnavailableCursor(), viewport)
}

func (e *responsiveEnv) dispatch(ev event.Event, size geometry.Size) ([]any, *core.Shell) {
	viewport := geometry.RectFromOffsetSize(geometry.Offset{}, size)
	messages := []any{}
	shell := core.NewShell(&messages)
	e.w.OnEvent(e.tree, ev, e.layoutAt(size), mouse.UnavailableCursor(), e.r, core.NullClipboard{}, shell, viewport)
	return messages, shell
}

func TestResponsive_BuilderCalledOncePerSize(t *testing.T) {
	env := newResponsiveEnv(nil)
	size := geometry.Size{Width: 100, Height: 50}

	env.draw(size)
	env.draw(size)
	env.draw(size)

	if env.builds != 1 {
		t.Fatalf("expected exactly 1 build for repeated resolves at one size, got %d", env.builds)
	}
	if env.built[0].layoutCalls != 1 {
		t.Fatalf("expected cached layout to be reused, got %d layout calls", env.built[0].layoutCalls)
	}
}

func TestResponsive_SizeChangeRebuildsOnce(t *testing.T) {
	env := newResponsiveEnv(nil)

	env.draw(geometry.Size{Width: 100, Height: 50})
	env.draw(geometry.Size{Width: 200, Height: 50})

	if env.builds != 2 {
		t.Fatalf("expected exactly one rebuild after a size change, got %d builds", env.builds)
	}
	if max := env.built[1].lastLimits.Max(); max.Width != 200 || max.Height != 50 {
		t.Fatalf("expected relayout against the new size, got max %+v", max)
	}
	if env.built[1].layoutCalls != 1 {
		t.Fatalf("expected one layout of the new subtree, got %d", env.built[1].layoutCalls)
	}
}

func TestResponsive_FirstUseBuildsEvenAtZeroSize(t *testing.T) {
	env := newResponsiveEnv(nil)

	env.draw(geometry.Size{})

	if env.builds != 1 {
		t.Fatalf("expected first use to build at the zero size, got %d builds", env.builds)
	}
}

func TestResponsive_DescendantInvalidationClearsLayoutOnly(t *testing.T) {
	env := newResponsiveEnv(func(p *probeWidget) {
		p.onEvent = func(ev event.Event, shell *core.Shell) event.Status {
			shell.InvalidateLayout()
			return event.Captured
		}
	})
	size := geometry.Size{Width: 100, Height: 50}

	env.draw(size)
	_, shell := env.dispatch(event.PointerPressed{}, size)

	if !shell.IsLayoutInvalid() {
		t.Fatalf("expected the invalidation signal to reach the outer shell")
	}
	if env.builds != 1 {
		t.Fatalf("expected no rebuild on layout invalidation, got %d builds", env.builds)
	}

	env.draw(size)
	if env.builds != 1 {
		t.Fatalf("expected the subtree instance to survive relayout, got %d builds", env.builds)
	}
	if env.built[0].layoutCalls != 2 {
		t.Fatalf("expected layout recomputation after invalidation, got %d calls", env.built[0].layoutCalls)
	}
}

func TestResponsive_MessagesMergeInEmissionOrder(t *testing.T) {
	env := newResponsiveEnv(func(p *probeWidget) {
		p.onEvent = func(ev event.Event, shell *core.Shell) event.Status {
			shell.Publish("first")
			shell.Publish("second")
			return event.Captured
		}
	})
	size := geometry.Size{Width: 100, Height: 50}

	messages, _ := env.dispatch(event.PointerPressed{}, size)

	if !reflect.DeepEqual(messages, []any{"first", "second"}) {
		t.Fatalf("expected inner messages in emission order, got %v", messages)
	}
}

func TestResponsive_OverlayNoneReleasesImmediately(t *testing.T) {
	env := newResponsiveEnv(nil)
	size := geometry.Size{Width: 100, Height: 50}

	element := env.w.Overlay(env.tree, env.layoutAt(size), env.r, geometry.Offset{})
	if element != nil {
		t.Fatalf("expected no overlay when the subtree produces none")
	}

	// Borrows must be released: a normal dispatch right after must work.
	env.draw(size)
}

func TestResponsive_OverlayBundleBlocksOtherAccess(t *testing.T) {
	env := newResponsiveEnv(func(p *probeWidget) {
		p.overlayFn = func() core.Overlay {
			return &invalidatingOverlay{size: geometry.Size{Width: 20, Height: 20}}
		}
	})
	size := geometry.Size{Width: 100, Height: 50}

	element := env.w.Overlay(env.tree, env.layoutAt(size), env.r, geometry.Offset{})
	if element == nil {
		t.Fatalf("expected an overlay element")
	}
	bundle := element.Overlay().(*responsiveOverlay)

	mustPanic(t, "second overlay acquisition", func() {
		env.w.Overlay(env.tree, env.layoutAt(size), env.r, geometry.Offset{})
	})
	mustPanic(t, "draw while bundle is live", func() {
		env.draw(size)
	})

	bundle.Release()
	bundle.Release() // releasing twice is a no-op

	env.draw(size)

	mustPanic(t, "bundle use after release", func() {
		bundle.Layout(env.r, size)
	})
}

func TestResponsive_OverlayEventInvalidationClearsCachedLayout(t *testing.T) {
	env := newResponsiveEnv(func(p *probeWidget) {
		p.overlayFn = func() core.Overlay {
			return &invalidatingOverlay{size: geometry.Size{Width: 20, Height: 20}}
		}
	})
	size := geometry.Size{Width: 100, Height: 50}

	env.draw(size)
	if env.built[0].layoutCalls != 1 {
		t.Fatalf("expected one initial layout, got %d", env.built[0].layoutCalls)
	}

	element := env.w.Overlay(env.tree, env.layoutAt(size), env.r, geometry.Offset{})
	bundle := element.Overlay().(*responsiveOverlay)
	node := bundle.Layout(env.r, size)

	messages := []any{}
	shell := core.NewShell(&messages)
	bundle.OnEvent(event.PointerPressed{}, layout.NewLayout(&node), mouse.UnavailableCursor(), env.r, core.NullClipboard{}, shell)
	bundle.Release()

	env.draw(size)
	if env.builds != 1 {
		t.Fatalf("expected no rebuild from overlay invalidation, got %d builds", env.builds)
	}
	if env.built[0].layoutCalls != 2 {
		t.Fatalf("expected cached layout cleared through the bundle back-reference, got %d calls", env.built[0].layoutCalls)
	}
}

func TestResponsive_ExampleScenario(t *testing.T) {
	env := newResponsiveEnv(nil)

	env.draw(geometry.Size{Width: 100, Height: 50})
	if env.builds != 1 {
		t.Fatalf("expected builder invoked once, got %d", env.builds)
	}

	env.draw(geometry.Size{Width: 100, Height: 50})
	if env.builds != 1 {
		t.Fatalf("expected no rebuild at the same size, got %d", env.builds)
	}

	env.draw(geometry.Size{Width: 200, Height: 50})
	if env.builds != 2 {
		t.Fatalf("expected rebuild at the new size, got %d", env.builds)
	}
	if env.built[1].layoutCalls != 1 {
		t.Fatalf("expected the new subtree laid out against the new bound, got %d", env.built[1].layoutCalls)
	}
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected %s to panic", what)
		}
	}()
	f()
}
