// Package site renders the portfolio into static files.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/farahnozfirdavsi/portfolio/internal/content"
	"github.com/farahnozfirdavsi/portfolio/internal/motion"
	"github.com/farahnozfirdavsi/portfolio/internal/surface"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// staticFS holds the stylesheet and runtime loader. surface.wasm and
// wasm_exec.js are added to static/ by `make wasm` before the binary is built.
//
//go:embed static
var staticFS embed.FS

// Page is the view model for index.html.
type Page struct {
	Profile content.Profile
	Options surface.Options

	// SurfaceJSON is read by the browser runtime from <html data-surface>.
	SurfaceJSON string
	// Frame is the backdrop before the first scroll sample.
	Frame motion.Frame
}

// NewPage validates profile and opts and prepares them for rendering.
func NewPage(profile content.Profile, opts surface.Options) (Page, error) {
	if err := profile.Validate(); err != nil {
		return Page{}, fmt.Errorf("invalid profile: %w", err)
	}
	raw, err := opts.Encode()
	if err != nil {
		return Page{}, err
	}
	return Page{
		Profile:     profile,
		Options:     opts,
		SurfaceJSON: raw,
		Frame:       opts.Parallax.At(0),
	}, nil
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"frameStyle":   frameStyle,
		"surfaceStyle": surfaceStyle,
		"accent":       accent,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes index.html for page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html.tmpl", page); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// Options are validated in NewPage, so the values below are known to be
// plain numbers and hex colours.

func frameStyle(f motion.Frame) template.CSS {
	return template.CSS(f.CSS())
}

func surfaceStyle(o surface.Options) template.CSS {
	return template.CSS("--cursor-size: " + motion.Pixels(o.CursorSize) +
		"; --cursor-color: " + o.CursorColor +
		"; --reveal-offset: " + motion.Pixels(o.RevealOffset) +
		"; --reveal-duration: " + strconv.Itoa(o.RevealDurationMs) + "ms")
}

// accent sets the --accent custom property. Colours come from content
// constants, which are validated as non-empty only, so anything that is not a
// hex colour is dropped.
func accent(color string) template.CSS {
	if !surface.IsHexColor(color) {
		return ""
	}
	return template.CSS("--accent: " + color)
}
