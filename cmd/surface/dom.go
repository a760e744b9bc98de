//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/farahnozfirdavsi/portfolio/internal/motion"
	"github.com/farahnozfirdavsi/portfolio/internal/surface"
)

// revealThreshold is the visible fraction of a section that counts as in view.
const revealThreshold = 0.1

func loadOptions(root js.Value) (surface.Options, error) {
	raw := root.Get("dataset").Get("surface")
	if raw.Type() != js.TypeString {
		return surface.DefaultOptions(), nil
	}
	return surface.DecodeOptions(raw.String())
}

// domHost implements surface.Host over the page's DOM. The overlay and
// backdrop are the #cursor and #backdrop elements rendered by the site.
type domHost struct {
	window   js.Value
	document js.Value
	root     js.Value
	cursor   js.Value
	backdrop js.Value

	// fail is called with the panic of any callback the browser invokes.
	fail func(error)
}

func newDOMHost(window, document js.Value, fail func(error)) *domHost {
	return &domHost{
		window:   window,
		document: document,
		root:     document.Get("documentElement"),
		cursor:   document.Call("getElementById", "cursor"),
		backdrop: document.Call("getElementById", "backdrop"),
		fail:     fail,
	}
}

// recoverCallback stops a panic from crossing back into JavaScript, where it
// would end the program without releasing anything.
func (h *domHost) recoverCallback(event string) {
	r := recover()
	if r == nil {
		return
	}
	if h.fail != nil {
		h.fail(fmt.Errorf("%s callback panicked: %v", event, r))
	}
}

// listen adds an event listener and returns the function that removes it
// and frees the Go callback.
func (h *domHost) listen(target js.Value, event string, opts map[string]any, fn func(js.Value)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		defer h.recoverCallback(event)
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	if opts == nil {
		target.Call("addEventListener", event, cb)
	} else {
		target.Call("addEventListener", event, cb, opts)
	}
	return func() {
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

var passive = map[string]any{"passive": true}

func (h *domHost) ListenPointer(fn func(surface.Point)) func() {
	return h.listen(h.window, "pointermove", passive, func(e js.Value) {
		fn(surface.Point{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()})
	})
}

func (h *domHost) ListenScroll(fn func(surface.Viewport)) func() {
	onChange := func(js.Value) { fn(h.Viewport()) }
	stopScroll := h.listen(h.window, "scroll", passive, onChange)
	stopResize := h.listen(h.window, "resize", passive, onChange)
	return func() {
		stopScroll()
		stopResize()
	}
}

func (h *domHost) ObserveSections(fn func(string)) func() {
	nodes := h.document.Call("querySelectorAll", "[data-reveal]")

	ctor := h.window.Get("IntersectionObserver")
	if ctor.IsUndefined() {
		for i := 0; i < nodes.Length(); i++ {
			fn(nodes.Index(i).Get("id").String())
		}
		return func() {}
	}

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		defer h.recoverCallback("intersection")
		entries, observer := args[0], args[1]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			target := entry.Get("target")
			observer.Call("unobserve", target)
			fn(target.Get("id").String())
		}
		return nil
	})
	observer := ctor.New(cb, map[string]any{"threshold": revealThreshold})
	for i := 0; i < nodes.Length(); i++ {
		observer.Call("observe", nodes.Index(i))
	}
	return func() {
		observer.Call("disconnect")
		cb.Release()
	}
}

func (h *domHost) Viewport() surface.Viewport {
	el := h.document.Get("scrollingElement")
	if el.IsNull() || el.IsUndefined() {
		el = h.root
	}
	return surface.Viewport{
		ScrollTop:    el.Get("scrollTop").Float(),
		ScrollHeight: el.Get("scrollHeight").Float(),
		ClientHeight: el.Get("clientHeight").Float(),
	}
}

func (h *domHost) SetCursorMode(m surface.CursorMode) {
	if m == surface.CursorNative {
		h.root.Get("dataset").Delete("cursor")
		h.cursor.Get("classList").Call("remove", "is-active")
		return
	}
	h.root.Get("dataset").Set("cursor", m.String())
}

func (h *domHost) PaintCursor(p surface.Point) {
	h.cursor.Get("style").Set("transform", p.Translate())
	h.cursor.Get("classList").Call("add", "is-active")
}

func (h *domHost) PaintBackdrop(f motion.Frame) {
	style := h.backdrop.Get("style")
	style.Set("transform", f.Transform())
	style.Set("opacity", f.OpacityValue())
}

func (h *domHost) PaintSection(id string) {
	el := h.document.Call("getElementById", id)
	if el.IsNull() {
		return
	}
	el.Get("classList").Call("add", "is-revealed")
}
