// Package motion maps scroll samples to visual properties.
//
// Every function here is pure: the output depends only on the latest sample,
// so callers can recompute on every scroll event without carrying state.
package motion

import (
	"math"
	"strconv"
)

// Range is a closed interval. From may be greater than To for a
// decreasing mapping.
type Range struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Progress returns how far the viewport has scrolled through the page's
// scrollable extent, in [0, 1]. A page that cannot scroll reports 0.
func Progress(scrollTop, scrollHeight, clientHeight float64) float64 {
	extent := scrollHeight - clientHeight
	if extent <= 0 || math.IsNaN(extent) {
		return 0
	}
	return clamp01(scrollTop / extent)
}

// Interpolate maps v from in to out linearly, clamping to out's bounds.
func Interpolate(v float64, in, out Range) float64 {
	span := in.To - in.From
	if span == 0 {
		return out.From
	}
	t := clamp01((v - in.From) / span)
	return out.From + (out.To-out.From)*t
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Unit is the domain of scroll progress.
var Unit = Range{From: 0, To: 1}

// Parallax derives the page background's offset and opacity from scroll progress.
type Parallax struct {
	Offset  Range `json:"offset"`
	Opacity Range `json:"opacity"`
}

var DefaultParallax = Parallax{
	Offset:  Range{From: 0, To: 300},
	Opacity: Range{From: 1, To: 0.6},
}

// At returns the frame for progress p.
func (p Parallax) At(progress float64) Frame {
	return Frame{
		OffsetY: Interpolate(progress, Unit, p.Offset),
		Opacity: Interpolate(progress, Unit, p.Opacity),
	}
}

// Frame is one sample of the background's visual state.
type Frame struct {
	OffsetY float64
	Opacity float64
}

// Transform formats the offset as a CSS transform, e.g. "translateY(150px)".
func (f Frame) Transform() string {
	return "translateY(" + Pixels(f.OffsetY) + ")"
}

// OpacityValue formats the opacity as a CSS number.
func (f Frame) OpacityValue() string {
	return Number(f.Opacity)
}

// CSS formats the frame as inline style declarations.
func (f Frame) CSS() string {
	return "transform: " + f.Transform() + "; opacity: " + f.OpacityValue()
}

// Number formats v with at most four decimals and no trailing zeros,
// so 0.7999999999999999 renders as 0.8.
func Number(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func Pixels(v float64) string {
	return Number(v) + "px"
}
