package doctree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/mdhtml/ast"
)

// ErrNilContent is returned by Build if no content is given.
var ErrNilContent = errors.New("cannot build a document tree from nil content")

// Node is a node of a materialized document. It is either the document root,
// a block (carrying a tag), or an item (carrying an event).
type Node struct {
	parent   *Node         // parent node of this node
	children childrenSlice // mutex-protected slice of children nodes
	kind     nodeKind      // document, block or item
	Tag      ast.Tag       // tag of a block, nil otherwise
	Event    ast.Event     // event of an item, nil otherwise
}

type nodeKind uint8

const (
	documentNode nodeKind = iota
	blockNode
	itemNode
)

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return &Node{kind: documentNode}
}

// NewBlock creates a block node for a tag.
func NewBlock(tag ast.Tag) *Node {
	return &Node{kind: blockNode, Tag: tag}
}

// NewItem creates an item node for an event.
func NewItem(ev ast.Event) *Node {
	return &Node{kind: itemNode, Event: ev}
}

// IsBlock is true for block nodes.
func (node *Node) IsBlock() bool {
	return node.kind == blockNode
}

// IsItem is true for item nodes.
func (node *Node) IsItem() bool {
	return node.kind == itemNode
}

func (node *Node) String() string {
	switch {
	case node.IsBlock():
		return fmt.Sprintf("(Block #ch=%d %v)", node.ChildCount(), node.Tag)
	case node.IsItem():
		return fmt.Sprintf("(Item %v)", node.Event)
	}
	return fmt.Sprintf("(Document #ch=%d)", node.ChildCount())
}

// AddChild appends a child node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the document root).
func (node *Node) Parent() *Node {
	return node.parent
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node) Child(n int) (*Node, bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node) Children() []*Node {
	return node.children.asSlice()
}

// Node converts a materialized node to a node of package ast. Documents have
// no ast counterpart; for them the result is nil.
func (node *Node) Node() ast.Node {
	switch {
	case node.IsBlock():
		return ast.Block{Tag: node.Tag, Content: node.Content()}
	case node.IsItem():
		return ast.Item{Event: node.Event}
	}
	return nil
}

// Content returns a fresh single-pass content over the children of node.
// The children slice is copied, so adding children after the call does not
// affect the returned content.
func (node *Node) Content() ast.Content {
	children := node.Children()
	pos := 0
	return ast.ContentFunc(func() (ast.Node, bool) {
		for pos < len(children) {
			ch := children[pos]
			pos++
			if n := ch.Node(); n != nil {
				return n, true
			}
			tracer().Debugf("skipping document node nested in %v", node)
		}
		return nil, false
	})
}

// --- Build -----------------------------------------------------------------

// Build consumes content and materializes it as the children of a new
// document root. Nodes are copied as they are, malformed ones included.
func Build(content ast.Content) (*Node, error) {
	if content == nil {
		return nil, ErrNilContent
	}
	root := NewDocument()
	build(root, content)
	tracer().Debugf("built document tree with %d top-level nodes", root.ChildCount())
	return root, nil
}

func build(parent *Node, content ast.Content) {
	for {
		n, ok := content.Next()
		if !ok {
			return
		}
		var tag ast.Tag
		var nested ast.Content
		var ev ast.Event
		switch m := n.Match(); m {
		case m.Block(&tag, &nested):
			block := NewBlock(tag)
			parent.AddChild(block)
			if nested != nil {
				build(block, nested)
			}
		case m.Item(&ev):
			parent.AddChild(NewItem(ev))
		}
	}
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Node
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) addChild(child *Node, parent *Node) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) child(n int) *Node {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Node {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
