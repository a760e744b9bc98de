package site

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/farahnozfirdavsi/portfolio/internal/content"
	"github.com/farahnozfirdavsi/portfolio/internal/surface"
)

var update = flag.Bool("update", false, "rewrite testdata/index.golden")

func renderDoc(t *testing.T, profile content.Profile, opts surface.Options) *html.Node {
	t.Helper()
	page, err := NewPage(profile, opts)
	require.NoError(t, err)

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))

	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findAll(doc *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

func findOne(t *testing.T, doc *html.Node, match func(*html.Node) bool) *html.Node {
	t.Helper()
	found := findAll(doc, match)
	require.Len(t, found, 1)
	return found[0]
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func byAtom(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.DataAtom == a }
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, _ := attr(n, "id")
		return v == id
	}
}

// bodyText returns the visible text of the body, one trimmed text node per
// line with inner whitespace collapsed.
func bodyText(t *testing.T, doc *html.Node) string {
	t.Helper()
	body := findOne(t, doc, byAtom(atom.Body))

	var lines []string
	walk(body, func(n *html.Node) bool {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return false
		}
		if n.Type == html.TextNode {
			if s := strings.Join(strings.Fields(n.Data), " "); s != "" {
				lines = append(lines, s)
			}
		}
		return true
	})
	return strings.Join(lines, "\n") + "\n"
}

func TestRender_Golden(t *testing.T) {
	got := bodyText(t, renderDoc(t, content.Default, surface.DefaultOptions()))

	golden := filepath.Join("testdata", "index.golden")
	if *update {
		require.NoError(t, os.WriteFile(golden, []byte(got), 0o644))
	}
	want, err := os.ReadFile(golden)
	require.NoError(t, err)

	assert.Equal(t, string(want), got)
}

func TestRender_SectionOrder(t *testing.T) {
	doc := renderDoc(t, content.Default, surface.DefaultOptions())

	var ids []string
	for _, n := range findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "id"); return ok }) {
		id, _ := attr(n, "id")
		ids = append(ids, id)
	}

	assert.Equal(t, []string{
		"cursor", "backdrop", "intro", "links",
		"education", "experience", "leadership", "projects", "footer",
	}, ids)
}

func TestRender_RevealSections(t *testing.T) {
	doc := renderDoc(t, content.Default, surface.DefaultOptions())

	var ids []string
	for _, n := range findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-reveal"); return ok }) {
		id, _ := attr(n, "id")
		ids = append(ids, id)
	}

	assert.Equal(t, []string{"education", "experience", "leadership", "projects"}, ids)
}

func TestRender_SurfaceOptions(t *testing.T) {
	opts := surface.DefaultOptions()
	opts.HideNativeCursor = false
	opts.CursorColor = "#112233"

	doc := renderDoc(t, content.Default, opts)

	root := findOne(t, doc, byAtom(atom.Html))
	raw, ok := attr(root, "data-surface")
	require.True(t, ok)
	decoded, err := surface.DecodeOptions(raw)
	require.NoError(t, err)
	assert.Equal(t, opts, decoded)

	backdrop := findOne(t, doc, byID("backdrop"))
	style, _ := attr(backdrop, "style")
	assert.Equal(t, "transform: translateY(0px); opacity: 1", style)

	body := findOne(t, doc, byAtom(atom.Body))
	style, _ = attr(body, "style")
	assert.Equal(t, "--cursor-size: 16px; --cursor-color: #112233; --reveal-offset: 60px; --reveal-duration: 800ms", style)
}

func TestRender_Links(t *testing.T) {
	doc := renderDoc(t, content.Default, surface.DefaultOptions())

	links := findAll(doc, func(n *html.Node) bool {
		class, _ := attr(n, "class")
		return n.DataAtom == atom.A && class == "link"
	})
	require.Len(t, links, 2)

	href, _ := attr(links[0], "href")
	style, _ := attr(links[0], "style")
	assert.Equal(t, "https://linkedin.com", href)
	assert.Equal(t, "--accent: #C7D8CF", style)

	href, _ = attr(links[1], "href")
	assert.Equal(t, "https://github.com", href)
}

func TestRender_AvatarDegradesGracefully(t *testing.T) {
	profile := content.Default
	profile.Avatar = ""

	doc := renderDoc(t, profile, surface.DefaultOptions())

	assert.Empty(t, findAll(doc, byAtom(atom.Img)))
	findOne(t, doc, func(n *html.Node) bool {
		class, _ := attr(n, "class")
		return n.DataAtom == atom.Figure && class == "avatar"
	})

	want := bodyText(t, renderDoc(t, content.Default, surface.DefaultOptions()))
	assert.Equal(t, want, bodyText(t, doc), "every text section still renders")
}

func TestRender_AvatarHidesOnLoadError(t *testing.T) {
	doc := renderDoc(t, content.Default, surface.DefaultOptions())

	img := findOne(t, doc, byAtom(atom.Img))
	src, _ := attr(img, "src")
	onerror, _ := attr(img, "onerror")
	assert.Equal(t, "/images/profile.jpg", src)
	assert.Equal(t, "this.hidden = true", onerror)
}

func TestRender_DropsNonHexAccent(t *testing.T) {
	profile := content.Default
	profile.Projects = []content.Project{{Title: "Dashboard", Status: "Soon", Accent: "red;x:y"}}

	doc := renderDoc(t, profile, surface.DefaultOptions())

	project := findOne(t, doc, func(n *html.Node) bool {
		class, _ := attr(n, "class")
		return class == "project"
	})
	style, _ := attr(project, "style")
	assert.Empty(t, style)
}

func TestNewPage_RejectsInvalidInput(t *testing.T) {
	profile := content.Default
	profile.Name = ""
	_, err := NewPage(profile, surface.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")

	opts := surface.DefaultOptions()
	opts.CursorColor = "url(evil)"
	_, err = NewPage(content.Default, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid surface options")
}

func TestStylesheet_InteractionDetails(t *testing.T) {
	raw, err := staticFS.ReadFile("static/site.css")
	require.NoError(t, err)
	css := string(raw)

	for _, rule := range []string{
		"translateY(-10px)",
		"animation: intro-in 0.8s",
		"transform: scale(1.15) rotate(2deg)",
		"box-shadow: 0 0 20px var(--accent",
		"transform: scale(0.9)",
		"transform: scale(1.02)",
		"transform: scale(1.05)",
		"mix-blend-mode: difference",
		"z-index: 9999",
	} {
		assert.Contains(t, css, rule)
	}
}
