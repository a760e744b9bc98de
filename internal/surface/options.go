package surface

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/farahnozfirdavsi/portfolio/internal/motion"
)

// Options parametrize the surface. The site renders them into the page and
// the browser runtime decodes them, so both sides share one definition.
type Options struct {
	CursorSize       float64         `json:"cursorSize"`
	CursorColor      string          `json:"cursorColor"`
	HideNativeCursor bool            `json:"hideNativeCursor"`
	Parallax         motion.Parallax `json:"parallax"`
	RevealOffset     float64         `json:"revealOffset"`     // px below the resting position
	RevealDurationMs int             `json:"revealDurationMs"` // transition length
}

func DefaultOptions() Options {
	return Options{
		CursorSize:       16,
		CursorColor:      "#44614D",
		HideNativeCursor: true,
		Parallax:         motion.DefaultParallax,
		RevealOffset:     60,
		RevealDurationMs: 800,
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHexColor reports whether s is a #rgb, #rgba, #rrggbb or #rrggbbaa colour.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// Validate checks the options are safe to render into CSS.
func (o Options) Validate() error {
	var errs []error
	if !finite(o.CursorSize) || o.CursorSize <= 0 {
		errs = append(errs, fmt.Errorf("cursor size must be positive, got %v", o.CursorSize))
	}
	if !IsHexColor(o.CursorColor) {
		errs = append(errs, fmt.Errorf("cursor color %q is not a hex color", o.CursorColor))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"parallax offset from", o.Parallax.Offset.From},
		{"parallax offset to", o.Parallax.Offset.To},
		{"parallax opacity from", o.Parallax.Opacity.From},
		{"parallax opacity to", o.Parallax.Opacity.To},
	} {
		if !finite(f.value) {
			errs = append(errs, fmt.Errorf("%s is not finite", f.name))
		}
	}
	for _, v := range []float64{o.Parallax.Opacity.From, o.Parallax.Opacity.To} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("parallax opacity %v is outside [0, 1]", v))
		}
	}
	if !finite(o.RevealOffset) {
		errs = append(errs, errors.New("reveal offset is not finite"))
	}
	if o.RevealDurationMs < 0 {
		errs = append(errs, fmt.Errorf("reveal duration must not be negative, got %dms", o.RevealDurationMs))
	}
	return errors.Join(errs...)
}

// Encode returns the options as JSON.
func (o Options) Encode() (string, error) {
	if err := o.Validate(); err != nil {
		return "", fmt.Errorf("invalid surface options: %w", err)
	}
	b, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode surface options: %w", err)
	}
	return string(b), nil
}

// DecodeOptions parses JSON produced by Encode. Fields missing from raw keep
// their defaults; an empty raw yields DefaultOptions.
func DecodeOptions(raw string) (Options, error) {
	opts := DefaultOptions()
	if strings.TrimSpace(raw) == "" {
		return opts, nil
	}
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("decode surface options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return DefaultOptions(), fmt.Errorf("invalid surface options: %w", err)
	}
	return opts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
