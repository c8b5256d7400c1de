/*
Package ast defines the document tree consumed by the HTML renderer.

A document is a lazy, single-pass sequence of nodes (type Content). A node
is either a Block, pairing a Tag with a nested Content, or an Item, wrapping
a single leaf Event. Tags and events are small closed sets of variants,
modelled as sealed interfaces: only types of this package implement them.

Upstream producers usually deliver a flat stream of events, where block
structure is expressed by Start and End markers. Group turns such a
stream into nested Blocks, lazily:

   content := ast.Group(ast.Events(
       ast.Start{Tag: ast.Paragraph{}},
       ast.Text("hi"),
       ast.End{Tag: ast.Paragraph{}},
   ))

Content is consumed exactly once. Clients wanting to traverse a document
more than once should materialize it first (see package doctree).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.ast'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.ast")
}
