/*
Package doctree materializes a document.

Documents of package ast are lazy and may be traversed only once. A
materialized document tree holds all nodes in memory and hands out a fresh
ast.Content for every traversal, thus it may be rendered any number of
times—even concurrently, as the children of a node are protected by a
read/write mutex.

   root, err := doctree.Build(content)
   …
   html.Render(&buf1, root.Content())
   html.Render(&buf2, root.Content())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package doctree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.doctree'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.doctree")
}
