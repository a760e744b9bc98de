package surface

import (
	"github.com/farahnozfirdavsi/portfolio/internal/motion"
)

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Translate formats p as a CSS transform.
func (p Point) Translate() string {
	return "translate3d(" + motion.Pixels(p.X) + ", " + motion.Pixels(p.Y) + ", 0)"
}

// Viewport is one scroll sample of the page's scroll container.
type Viewport struct {
	ScrollTop    float64
	ScrollHeight float64
	ClientHeight float64
}

// Progress is the normalized scroll progress of v.
func (v Viewport) Progress() float64 {
	return motion.Progress(v.ScrollTop, v.ScrollHeight, v.ClientHeight)
}

// CursorMode controls which pointer indicators the page shows.
type CursorMode int

const (
	// CursorNative shows only the platform pointer.
	CursorNative CursorMode = iota
	// CursorOverlay shows the overlay next to the platform pointer.
	CursorOverlay
	// CursorReplaced hides the platform pointer behind the overlay.
	CursorReplaced
)

func (m CursorMode) String() string {
	switch m {
	case CursorOverlay:
		return "overlay"
	case CursorReplaced:
		return "replaced"
	default:
		return "native"
	}
}

// Host is the rendering environment the surface is mounted into.
//
// Each Listen/Observe call registers exactly one subscription and returns the
// function that removes it. Hosts deliver events on a single goroutine.
type Host interface {
	ListenPointer(fn func(Point)) (release func())
	// ListenScroll calls fn on every scroll or resize.
	ListenScroll(fn func(Viewport)) (release func())
	// ObserveSections calls fn with a section's id when it intersects the
	// viewport.
	ObserveSections(fn func(id string)) (release func())

	// Viewport samples the scroll container now.
	Viewport() Viewport

	SetCursorMode(m CursorMode)
	PaintCursor(topLeft Point)
	PaintBackdrop(f motion.Frame)
	PaintSection(id string)
}
