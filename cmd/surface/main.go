//go:build js && wasm

// Command surface is the browser runtime for the portfolio page. It binds
// internal/surface to the DOM and is loaded by static/boot.js:
//
//	GOOS=js GOARCH=wasm go build -o internal/site/static/surface.wasm ./cmd/surface
package main

import (
	"context"
	"log"
	"syscall/js"

	"github.com/farahnozfirdavsi/portfolio/internal/surface"
)

func main() {
	doc := js.Global().Get("document")
	root := doc.Get("documentElement")

	opts, err := loadOptions(root)
	if err != nil {
		log.Printf("surface: %v, using defaults", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host := newDOMHost(js.Global(), doc, func(err error) {
		log.Printf("surface: %v", err)
		cancel()
	})

	stop := host.listen(js.Global(), "pagehide", nil, func(e js.Value) {
		// A persisted page goes into the back/forward cache and may be
		// shown again; keep running so it comes back interactive.
		if leavingForGood(e) {
			cancel()
		}
	})
	defer stop()

	root.Get("classList").Call("add", "surface-ready")
	defer root.Get("classList").Call("remove", "surface-ready")

	if err := surface.New(host, opts).Run(ctx); err != nil {
		log.Printf("surface: %v", err)
	}
}

// leavingForGood reports whether a pagehide event unloads the page rather
// than moving it into the back/forward cache.
func leavingForGood(e js.Value) bool {
	return !(e.Truthy() && e.Get("persisted").Truthy())
}
