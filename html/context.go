package html

import (
	"strconv"

	"github.com/npillmayer/mdhtml/ast"
)

// tagType tells if a block's opening or closing markup is to be rendered.
type tagType uint8

const (
	noTag tagType = iota
	opening
	closing
)

func (tt tagType) String() string {
	switch tt {
	case opening:
		return "opening"
	case closing:
		return "closing"
	}
	return "none"
}

// context is the state of a single render call.
type context struct {
	buf       Sink
	tagType   tagType
	footnotes Footnotes
}

func newContext(buf Sink) *context {
	return &context{buf: buf}
}

// --- Output ----------------------------------------------------------------

func (ctx *context) write(s string) {
	_, err := ctx.buf.WriteString(s)
	assertThat(err == nil, ErrSinkFailure, "writing %q", s)
}

func (ctx *context) writeByte(c byte) {
	err := ctx.buf.WriteByte(c)
	assertThat(err == nil, ErrSinkFailure, "writing %q", c)
}

func (ctx *context) writeEscaped(s string) {
	err := Escape(ctx.buf, s)
	assertThat(err == nil, ErrSinkFailure, "writing escaped %q", s)
}

func (ctx *context) writeInt(n int) {
	ctx.write(strconv.Itoa(n))
}

// --- Tags ------------------------------------------------------------------

// renderTag renders the opening or closing element for name, depending on
// the current tag type.
func (ctx *context) renderTag(name string) {
	switch ctx.tagType {
	case opening:
		ctx.writeByte('<')
	case closing:
		ctx.write("</")
	default:
		return
	}
	ctx.write(name)
	ctx.writeByte('>')
}

// renderNested renders a sequence of nested elements. Closing elements are
// rendered in reverse order, innermost first.
func (ctx *context) renderNested(names ...string) {
	switch ctx.tagType {
	case opening:
		for _, name := range names {
			ctx.renderTag(name)
		}
	case closing:
		for i := len(names) - 1; i >= 0; i-- {
			ctx.renderTag(names[i])
		}
	}
}

// render renders the markup of a block tag. Tags without markup of their
// own are silently ignored.
func (ctx *context) render(tag ast.Tag) {
	switch t := tag.(type) {
	case ast.Paragraph:
		ctx.renderTag("p")
	case ast.Header:
		ctx.renderTag("h" + strconv.Itoa(t.Level))
	case ast.CodeBlock:
		ctx.renderNested("pre", "code")
	case ast.FootnoteDefinition:
		ctx.renderFootnoteDefinition(t.Label)
	default:
		tracer().Debugf("no markup for %v", tag)
	}
}

// --- Footnotes -------------------------------------------------------------

func (ctx *context) renderFootnoteReference(label string) {
	ctx.write(`<sup class="footnote-reference"><a href="#`)
	ctx.writeEscaped(label)
	ctx.write(`">`)
	ctx.writeInt(ctx.footnotes.Index(label))
	ctx.write(`</a></sup>`)
}

// renderFootnoteDefinition wraps a footnote definition into a div. The label
// is a complete element of its own, rendered together with the opening div.
func (ctx *context) renderFootnoteDefinition(label string) {
	switch ctx.tagType {
	case opening:
		ctx.write(`<div class="footnote-definition" id="`)
		ctx.writeEscaped(label)
		ctx.write(`"><sup class="footnote-definition-label">`)
		ctx.writeInt(ctx.footnotes.Index(label))
		ctx.write("</sup>\n")
	case closing:
		ctx.write("</div>")
	}
}
