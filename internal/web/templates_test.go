package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// navView is what a visitor sees inside the rendered <nav>.
type navView struct {
	navs    int
	items   []*html.Node
	actions []*html.Node
	logos   int
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func collectAnchors(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func inspectNav(t *testing.T, markup string) navView {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	var v navView
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "nav":
				v.navs++
			case attr(n, "data-nav") == "items":
				v.items = collectAnchors(n)
			case attr(n, "data-nav") == "actions":
				v.actions = collectAnchors(n)
			case attr(n, "class") == "logo":
				v.logos++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return v
}

func renderNav(t *testing.T) string {
	t.Helper()
	r, err := NewRenderer("Acme")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Partial(&buf, "nav", Nav()))
	return buf.String()
}

func TestNavPartialStructure(t *testing.T) {
	v := inspectNav(t, renderNav(t))

	assert.Equal(t, 1, v.navs)
	assert.Equal(t, 1, v.logos)

	require.Len(t, v.items, 5)
	want := []string{"Solution", "Market Place", "Learn", "About", "Customer Stories"}
	for i, a := range v.items {
		assert.Equal(t, want[i], text(a))
		assert.Equal(t, "#", attr(a, "href"))
	}

	require.Len(t, v.actions, 2)
	login, cta := v.actions[0], v.actions[1]
	assert.Equal(t, "Login", text(login))
	assert.Equal(t, "/signin", attr(login, "href"))
	assert.Equal(t, "Start Free Trial", text(cta))
	assert.Equal(t, "/signup", attr(cta, "href"))
	assert.Equal(t, "cta", attr(cta, "data-nav"))
}

func TestNavPartialIsIdempotent(t *testing.T) {
	first := renderNav(t)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, renderNav(t))
	}
}

func TestNavLabelsAppearOnce(t *testing.T) {
	out := renderNav(t)
	for _, label := range navLabels {
		assert.Equal(t, 1, strings.Count(out, ">"+label+"<"), label)
	}
}

func TestRenderPageMountsNav(t *testing.T) {
	r, err := NewRenderer("Acme")
	require.NoError(t, err)

	type content struct{ Headline, Description, Message string }
	for _, name := range []string{"home", "signin", "signup"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			page := NewPage("", content{Headline: "Ship faster", Description: "  Build it.  ", Message: "soon"})
			require.NoError(t, r.Render(&buf, name, page))

			out := buf.String()
			assert.Contains(t, out, "<title>Acme</title>")
			v := inspectNav(t, out)
			assert.Equal(t, 1, v.navs)
			assert.Len(t, v.items, 5)
			assert.Len(t, v.actions, 2)
		})
	}
}

func TestRenderHomeContent(t *testing.T) {
	r, err := NewRenderer("Acme")
	require.NoError(t, err)

	var buf bytes.Buffer
	page := NewPage("Home", struct{ Headline, Description string }{"Ship faster", "  Build it.  "})
	require.NoError(t, r.Render(&buf, "home", page))

	out := buf.String()
	assert.Contains(t, out, "<title>Home</title>")
	assert.Contains(t, out, "<h1>Ship faster</h1>")
	assert.Contains(t, out, "<p>Build it.</p>")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer("Acme")
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", nil))
}

func TestPartialUnknown(t *testing.T) {
	r, err := NewRenderer("Acme")
	require.NoError(t, err)
	err = r.Partial(&bytes.Buffer{}, "sidebar", nil)
	assert.ErrorIs(t, err, ErrUnknownPartial)
}
