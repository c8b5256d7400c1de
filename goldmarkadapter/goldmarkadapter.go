/*
Package goldmarkadapter adapts goldmark parse trees to documents of package ast.

Goldmark (https://github.com/yuin/goldmark) is a CommonMark compliant
markdown parser. This adapter converts its AST—including footnotes of the
footnote extension—lazily into an ast.Content, suitable for rendering with
package html. Text is escaped for HTML during conversion; raw HTML is passed
on unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package goldmarkadapter

import (
	"strconv"

	"github.com/npillmayer/mdhtml/ast"
	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// tracer traces with key 'mdhtml.goldmark'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.goldmark")
}

// md is the goldmark parser configuration used by Parse.
var md goldmark.Markdown

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.Footnote,
			extension.Strikethrough,
		),
	)
}

// Parse parses markdown source and returns the document as content.
func Parse(source []byte) ast.Content {
	doc := md.Parser().Parse(text.NewReader(source))
	return Adapt(doc, source)
}

// Adapt converts the children of a goldmark document node to content.
// source has to be the markdown source the document has been parsed from.
// Conversion happens lazily, as nodes are pulled from the content.
func Adapt(doc gast.Node, source []byte) ast.Content {
	a := &adapter{source: source, labels: footnoteLabels(doc)}
	return a.content(doc)
}

type adapter struct {
	source []byte
	labels map[int]string // footnote index → footnote label
}

// footnoteLabels collects the labels of all footnote definitions. Goldmark
// references footnotes by index, but our footnote references carry labels.
func footnoteLabels(doc gast.Node) map[int]string {
	labels := make(map[int]string)
	for ch := doc.FirstChild(); ch != nil; ch = ch.NextSibling() {
		list, ok := ch.(*extast.FootnoteList)
		if !ok {
			continue
		}
		for fn := list.FirstChild(); fn != nil; fn = fn.NextSibling() {
			if footnote, ok := fn.(*extast.Footnote); ok {
				labels[footnote.Index] = string(footnote.Ref)
			}
		}
	}
	tracer().Debugf("document has %d footnote definitions", len(labels))
	return labels
}

func (a *adapter) label(index int) string {
	if l, ok := a.labels[index]; ok {
		return l
	}
	return strconv.Itoa(index)
}

// content returns the children of parent as content. A goldmark node may
// convert to more than one of our nodes, thus we keep a queue.
func (a *adapter) content(parent gast.Node) ast.Content {
	next := parent.FirstChild()
	var queue []ast.Node
	return ast.ContentFunc(func() (ast.Node, bool) {
		for len(queue) == 0 && next != nil {
			n := next
			next = n.NextSibling()
			queue = a.convert(n, queue)
		}
		if len(queue) == 0 {
			return nil, false
		}
		node := queue[0]
		queue = queue[1:]
		return node, true
	})
}

func (a *adapter) block(tag ast.Tag, n gast.Node) ast.Node {
	return ast.Block{Tag: tag, Content: a.content(n)}
}

// convert appends the conversion of n to out.
func (a *adapter) convert(n gast.Node, out []ast.Node) []ast.Node {
	switch n := n.(type) {
	case *gast.Paragraph:
		return append(out, a.block(ast.Paragraph{}, n))
	case *gast.TextBlock:
		return append(out, a.block(ast.Other{Name: "TextBlock"}, n))
	case *gast.Heading:
		return append(out, a.block(ast.Header{Level: n.Level}, n))
	case *gast.FencedCodeBlock:
		code := ast.Text(a.lines(n, true))
		return append(out, ast.B(ast.CodeBlock{Info: string(n.Language(a.source))}, ast.I(code)))
	case *gast.CodeBlock:
		code := ast.Text(a.lines(n, true))
		return append(out, ast.B(ast.CodeBlock{}, ast.I(code)))
	case *gast.HTMLBlock:
		raw := a.lines(n, false)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(a.source))
		}
		return append(out, ast.I(ast.HTML(raw)))
	case *gast.ThematicBreak:
		return append(out, ast.I(ast.HTML("<hr />\n")))
	case *gast.Blockquote:
		return append(out, a.block(ast.BlockQuote{}, n))
	case *gast.List:
		return append(out, a.block(ast.List{Ordered: n.IsOrdered(), Start: n.Start}, n))
	case *gast.ListItem:
		return append(out, a.block(ast.ListItem{}, n))
	case *gast.Text:
		return a.text(n, out)
	case *gast.String:
		return append(out, ast.I(ast.Text(util.EscapeHTML(n.Value))))
	case *gast.CodeSpan:
		return append(out, a.block(ast.Code{}, n))
	case *gast.Emphasis:
		if n.Level >= 2 {
			return append(out, a.block(ast.Strong{}, n))
		}
		return append(out, a.block(ast.Emphasis{}, n))
	case *gast.Link:
		return append(out, a.block(ast.Link{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}, n))
	case *gast.AutoLink:
		label := ast.Text(util.EscapeHTML(n.Label(a.source)))
		return append(out, ast.B(ast.Link{Destination: string(n.URL(a.source))}, ast.I(label)))
	case *gast.Image:
		return append(out, a.block(ast.Image{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}, n))
	case *gast.RawHTML:
		var raw []byte
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			raw = append(raw, seg.Value(a.source)...)
		}
		return append(out, ast.I(ast.InlineHTML(raw)))
	case *extast.Footnote:
		return append(out, a.block(ast.FootnoteDefinition{Label: string(n.Ref)}, n))
	case *extast.FootnoteLink:
		return append(out, ast.I(ast.FootnoteReference{Label: a.label(n.Index)}))
	case *extast.FootnoteBacklink:
		return out // back-links are not part of our footnote markup
	case *extast.FootnoteList:
		return append(out, a.block(ast.Other{Name: "FootnoteList"}, n))
	}
	if n.HasChildren() {
		return append(out, a.block(ast.Other{Name: n.Kind().String()}, n))
	}
	tracer().Debugf("dropping goldmark node of kind %s", n.Kind())
	return out
}

// text converts a text segment. Line breaks are split off as separate
// items.
func (a *adapter) text(n *gast.Text, out []ast.Node) []ast.Node {
	v := n.Segment.Value(a.source)
	if n.IsRaw() {
		v = util.EscapeHTML(v)
	} else {
		v = util.EscapeHTML(resolve(v))
	}
	out = append(out, ast.I(ast.Text(v)))
	if n.HardLineBreak() {
		out = append(out, ast.I(ast.InlineHTML("<br />\n")))
	} else if n.SoftLineBreak() {
		out = append(out, ast.I(ast.Text("\n")))
	}
	return out
}

// lines concatenates the lines of a block, optionally escaping them.
func (a *adapter) lines(n gast.Node, escape bool) string {
	var b []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b = append(b, line.Value(a.source)...)
	}
	if escape {
		b = util.EscapeHTML(b)
	}
	return string(b)
}

// resolve handles backslash escapes and character references of markdown
// text.
func resolve(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
