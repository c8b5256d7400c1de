package html

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/mdhtml/ast"
)

// Render renders a document to buf. It creates a fresh render context and
// traverses content exactly once, in document order.
//
// Render panics with an error wrapping ErrMalformedTree or ErrUnsupportedEvent
// if the document violates the contract of a well-formed tree, and with an
// error wrapping ErrSinkFailure if buf rejects a write.
func Render(buf Sink, content ast.Content) {
	ctx := newContext(buf)
	ctx.renderContent(content)
	tracer().Debugf("rendered document with %d footnotes", ctx.footnotes.Len())
}

// ToString renders a document to a string. Contrary to Render, contract
// violations of the document tree are reported as an error. The render is
// aborted at the first violation and no partial output is returned.
func ToString(content ast.Content) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !isContractViolation(e) {
				panic(r)
			}
			out, err = "", e
		}
	}()
	var b strings.Builder
	Render(&b, content)
	return b.String(), nil
}

func isContractViolation(err error) bool {
	return errors.Is(err, ErrMalformedTree) || errors.Is(err, ErrUnsupportedEvent) ||
		errors.Is(err, ErrSinkFailure)
}

// Renderer renders documents to HTML. It holds no state between calls and is
// safe for concurrent use.
type Renderer struct{}

// Render renders content to buf, see function Render.
func (Renderer) Render(buf Sink, content ast.Content) {
	Render(buf, content)
}

// ToString renders content to a string, see function ToString.
func (Renderer) ToString(content ast.Content) (string, error) {
	return ToString(content)
}

// --- Traversal -------------------------------------------------------------

func (ctx *context) renderContent(content ast.Content) {
	if content == nil {
		return
	}
	for {
		node, ok := content.Next()
		if !ok {
			return
		}
		ctx.renderNode(node)
	}
}

func (ctx *context) renderNode(node ast.Node) {
	assertThat(node != nil, ErrMalformedTree, "nil node in document")
	var tag ast.Tag
	var content ast.Content
	var ev ast.Event
	switch m := node.Match(); m {
	case m.Block(&tag, &content):
		ctx.tagType = opening
		ctx.render(tag)
		ctx.tagType = noTag
		ctx.renderContent(content)
		ctx.tagType = closing
		ctx.render(tag)
		ctx.writeByte('\n')
		ctx.tagType = noTag
	case m.Item(&ev):
		ctx.renderEvent(ev)
	default:
		panic(fmt.Errorf("mdhtml.html: cannot match node %v: %w", node, ErrMalformedTree))
	}
}

func (ctx *context) renderEvent(ev ast.Event) {
	switch e := ev.(type) {
	case ast.Text:
		ctx.write(string(e))
	case ast.HTML:
		ctx.write(string(e))
	case ast.InlineHTML:
		ctx.write(string(e))
	case ast.FootnoteReference:
		ctx.renderFootnoteReference(e.Label)
	case ast.Start, ast.End:
		assertThat(false, ErrMalformedTree, "structural marker %v as document leaf", ev)
	default:
		assertThat(false, ErrUnsupportedEvent, "cannot render %v", ev)
	}
}
