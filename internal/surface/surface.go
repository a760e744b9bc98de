// Package surface drives the page's scroll-linked background, one-shot
// section reveals and the overlay cursor.
//
// A Surface owns all of its state: the cursor position, the set of revealed
// sections and the host subscriptions it holds while mounted. It is not safe
// for concurrent use; hosts deliver events one at a time.
package surface

import (
	"context"
	"fmt"
)

type Surface struct {
	host     Host
	opts     Options
	cursor   Cursor
	reveals  Reveals
	releases []func()
	mounted  bool

	// failed is closed when an event handler panics; err holds the cause.
	failed chan struct{}
	err    error
}

func New(host Host, opts Options) *Surface {
	return &Surface{
		host:   host,
		opts:   opts,
		cursor: Cursor{Size: opts.CursorSize},
	}
}

// Mount subscribes to the host's pointer, scroll and section streams.
// Mounting an already mounted surface does nothing.
func (s *Surface) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.failed = make(chan struct{})
	s.err = nil

	mode := CursorOverlay
	if s.opts.HideNativeCursor {
		mode = CursorReplaced
	}
	s.host.SetCursorMode(mode)

	s.releases = append(s.releases, s.host.ListenPointer(s.pointerMoved))
	s.releases = append(s.releases, s.host.ListenScroll(s.scrolled))
	s.releases = append(s.releases, s.host.ObserveSections(s.sectionVisible))

	s.scrolled(s.host.Viewport())
}

// Unmount releases every subscription and restores the native cursor.
// Unmounting a surface that is not mounted does nothing.
func (s *Surface) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	for i := len(s.releases) - 1; i >= 0; i-- {
		if release := s.releases[i]; release != nil {
			release()
		}
	}
	s.releases = nil
	s.host.SetCursorMode(CursorNative)
}

// Run mounts the surface until ctx is done or an event handler panics. A
// panicking handler unmounts the surface from whichever goroutine delivered
// the event, and Run returns the panic as an error.
func (s *Surface) Run(ctx context.Context) error {
	defer s.Unmount()
	s.Mount()

	select {
	case <-ctx.Done():
		return nil
	case <-s.failed:
		return s.err
	}
}

func (s *Surface) pointerMoved(p Point) {
	defer s.recoverHandler("pointer")
	if !s.mounted {
		return
	}
	s.host.PaintCursor(s.cursor.MoveTo(p))
}

func (s *Surface) scrolled(v Viewport) {
	defer s.recoverHandler("scroll")
	if !s.mounted {
		return
	}
	s.host.PaintBackdrop(s.opts.Parallax.At(v.Progress()))
}

func (s *Surface) sectionVisible(id string) {
	defer s.recoverHandler("section")
	if !s.mounted {
		return
	}
	if s.reveals.Mark(id) {
		s.host.PaintSection(id)
	}
}

// recoverHandler turns a handler panic into teardown: the subscriptions are
// released, the native cursor comes back and Run is woken.
func (s *Surface) recoverHandler(event string) {
	r := recover()
	if r == nil {
		return
	}
	s.Unmount()
	if s.err == nil && s.failed != nil {
		s.err = fmt.Errorf("%s handler panicked: %v", event, r)
		close(s.failed)
	}
}
