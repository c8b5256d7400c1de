package goldmarkadapter

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/mdhtml/doctree"
	"github.com/npillmayer/mdhtml/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toHTML(t *testing.T, markdown string) string {
	out, err := html.ToString(Parse([]byte(markdown)))
	require.NoError(t, err)
	return out
}

func TestBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.goldmark")
	defer teardown()
	//
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraph", "hi", "<p>hi</p>\n"},
		{"h1", "# Hello", "<h1>Hello</h1>\n"},
		{"h3", "### Hello", "<h3>Hello</h3>\n"},
		{"fenced code", "```go\nx := 1 < 2\n```", "<pre><code>x := 1 &lt; 2\n</code></pre>\n"},
		{"indented code", "    a && b\n", "<pre><code>a &amp;&amp; b\n</code></pre>\n"},
		{"escaped text", "a < b & c", "<p>a &lt; b &amp; c</p>\n"},
		{"soft break", "a\nb", "<p>a\nb</p>\n"},
		{"raw inline html", "a <b>bold</b>", "<p>a <b>bold</b></p>\n"},
		{"emphasis has no markup", "*x* and **y**", "<p>x\n and y\n</p>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toHTML(t, tt.input))
		})
	}
}

func TestFootnotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.goldmark")
	defer teardown()
	//
	src := "First[^b], second[^a], again[^b].\n\n[^a]: Note A.\n\n[^b]: Note B.\n"
	out := toHTML(t, src)
	t.Logf("\n%s", out)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	//
	refs := doc.Find("sup.footnote-reference a")
	require.Equal(t, 3, refs.Length())
	var hrefs, numbers []string
	refs.Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
		numbers = append(numbers, s.Text())
	})
	assert.Equal(t, []string{"#b", "#a", "#b"}, hrefs)
	assert.Equal(t, []string{"1", "2", "1"}, numbers)
	//
	defs := doc.Find("div.footnote-definition")
	require.Equal(t, 2, defs.Length())
	defs.Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		label := s.Find("sup.footnote-definition-label").Text()
		body := s.Find("p").Text()
		switch id {
		case "a":
			assert.Equal(t, "2", label)
			assert.Equal(t, "Note A.", body)
		case "b":
			assert.Equal(t, "1", label)
			assert.Equal(t, "Note B.", body)
		default:
			t.Errorf("unexpected footnote definition %q", id)
		}
	})
}

func TestAdaptedDocumentMaterializes(t *testing.T) {
	root, err := doctree.Build(Parse([]byte("# T\n\nText[^1]\n\n[^1]: Body\n")))
	require.NoError(t, err)
	t.Logf("\n%s", doctree.Dump(root))
	first, err := html.ToString(root.Content())
	require.NoError(t, err)
	second, _ := html.ToString(root.Content())
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "<h1>T</h1>\n<p>Text<sup class=\"footnote-reference\">"))
}

func TestLabelFallback(t *testing.T) {
	a := &adapter{labels: map[int]string{1: "x"}}
	assert.Equal(t, "x", a.label(1))
	assert.Equal(t, "7", a.label(7))
}
