package ast

import "fmt"

// Node is the building block of a document: either a Block or an Item.
//
// Clients inspect nodes by matching:
//
//    var tag ast.Tag
//    var content ast.Content
//    var ev ast.Event
//    switch m := node.Match(); m {
//    case m.Block(&tag, &content):
//        …
//    case m.Item(&ev):
//        …
//    }
//
type Node interface {
	Match() Matcher
	String() string
	isNode()
}

// Block is a tag together with its logically nested content.
type Block struct {
	Tag     Tag
	Content Content
}

// Item is a leaf node wrapping a single event.
type Item struct {
	Event Event
}

func (Block) isNode() {}
func (Item) isNode()  {}

func (b Block) String() string {
	return fmt.Sprintf("Block(%v)", b.Tag)
}

func (it Item) String() string {
	return fmt.Sprintf("Item(%v)", it.Event)
}

// Match returns a matcher for b.
func (b Block) Match() Matcher {
	return matcher{block: &b}
}

// Match returns a matcher for it.
func (it Item) Match() Matcher {
	return matcher{item: &it}
}

// B is a shortcut to create a block node.
func B(tag Tag, children ...Node) Block {
	return Block{Tag: tag, Content: Nodes(children...)}
}

// I is a shortcut to create an item node.
func I(ev Event) Item {
	return Item{Event: ev}
}

// --- Matching --------------------------------------------------------------

// Matcher matches a node against one of its two variants. A matching case
// returns the matcher itself and stores the components of the node into the
// arguments; a non-matching case returns nil.
type Matcher interface {
	Block(*Tag, *Content) Matcher
	Item(*Event) Matcher
}

type matcher struct {
	block *Block
	item  *Item
}

func (mm matcher) Block(tag *Tag, content *Content) Matcher {
	if mm.block != nil {
		*tag = mm.block.Tag
		*content = mm.block.Content
		return mm
	}
	return nil
}

func (mm matcher) Item(ev *Event) Matcher {
	if mm.item != nil {
		*ev = mm.item.Event
		return mm
	}
	return nil
}
