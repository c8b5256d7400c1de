/*
Package html renders a document tree (package ast) to an HTML fragment.

Rendering is a single pass over the document. Every block is rendered as its
opening markup, its nested content and its closing markup, followed by a
newline. Text and raw HTML are copied to the output unchanged, as
upstream producers are trusted to have escaped them. Footnotes are numbered
in order of first appearance, either by reference or by definition:

   <sup class="footnote-reference"><a href="#note1">1</a></sup>
   …
   <div class="footnote-definition" id="note1"><sup class="footnote-definition-label">1</sup>
   Body</div>

The document tree has to be well-formed: structural Start/End markers and
events unknown to the renderer are contract violations of the producer.
Render will panic on them; ToString recovers and reports them as errors.

Each call to Render uses a fresh render context. Renders of independent
documents may run concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.html'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.html")
}

// ErrMalformedTree is raised if a structural Start or End marker shows up
// as a leaf of the document tree.
var ErrMalformedTree = errors.New("malformed document tree")

// ErrUnsupportedEvent is raised for events the renderer does not know how to
// render.
var ErrUnsupportedEvent = errors.New("unsupported event")

// ErrSinkFailure is raised if the output sink rejects a write.
var ErrSinkFailure = errors.New("cannot write to output sink")

func assertThat(that bool, err error, msg string, msgargs ...interface{}) {
	if !that {
		err = fmt.Errorf("mdhtml.html: "+msg+": %w", append(msgargs, err)...)
		tracer().Errorf(err.Error())
		panic(err)
	}
}
