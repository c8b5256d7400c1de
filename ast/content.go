package ast

// Content is a lazy, single-pass, non-restartable sequence of nodes.
// Next returns the next node and true, or false if the sequence is
// exhausted. Once exhausted, a Content stays exhausted.
type Content interface {
	Next() (Node, bool)
}

// ContentFunc adapts a function to interface Content.
type ContentFunc func() (Node, bool)

// Next calls f.
func (f ContentFunc) Next() (Node, bool) {
	return f()
}

// Nodes creates a single-pass content from a list of nodes.
func Nodes(nodes ...Node) Content {
	return &nodeList{nodes: nodes}
}

type nodeList struct {
	nodes []Node
	pos   int
}

func (nl *nodeList) Next() (Node, bool) {
	if nl.pos >= len(nl.nodes) {
		return nil, false
	}
	n := nl.nodes[nl.pos]
	nl.pos++
	return n, true
}

// Drain consumes all remaining nodes of c, including the nested content of
// blocks. It returns the number of top-level nodes consumed.
func Drain(c Content) int {
	if c == nil {
		return 0
	}
	cnt := 0
	for {
		n, ok := c.Next()
		if !ok {
			return cnt
		}
		if b, isBlock := n.(Block); isBlock {
			Drain(b.Content)
		}
		cnt++
	}
}

// --- Event streams ---------------------------------------------------------

// EventSource is a flat stream of events, where blocks are delimited by
// Start and End markers.
type EventSource interface {
	Next() (Event, bool)
}

// Events creates an event source from a list of events.
func Events(events ...Event) EventSource {
	return &eventList{events: events}
}

type eventList struct {
	events []Event
	pos    int
}

func (el *eventList) Next() (Event, bool) {
	if el.pos >= len(el.events) {
		return nil, false
	}
	ev := el.events[el.pos]
	el.pos++
	return ev, true
}

// Group lazily groups a flat event stream into a document tree. A Start
// event opens a Block, the nested content of which extends up to the
// matching End event. Events are pulled from src only as nodes are
// requested.
//
// If a client advances a content without having read the nested content of
// the previous block, the nested content is skipped.
// A Start without matching End is closed by the end of the stream.
// An unmatched End at top level is handed out as an Item; it is up to the
// consumer to reject it.
func Group(src EventSource) Content {
	return &groupedContent{src: src}
}

type groupedContent struct {
	src    EventSource
	nested bool            // content of a block, terminated by End
	done   bool            // exhausted
	open   *groupedContent // content of the last block handed out
}

func (gc *groupedContent) Next() (Node, bool) {
	if gc.done {
		return nil, false
	}
	if gc.open != nil { // skip unread nested content of previous block
		Drain(gc.open)
		gc.open = nil
	}
	ev, ok := gc.src.Next()
	if !ok {
		gc.done = true
		return nil, false
	}
	switch e := ev.(type) {
	case Start:
		child := &groupedContent{src: gc.src, nested: true}
		gc.open = child
		return Block{Tag: e.Tag, Content: child}, true
	case End:
		if gc.nested {
			gc.done = true
			return nil, false
		}
		tracer().Debugf("unmatched end marker %v at top level", e)
	}
	return Item{Event: ev}, true
}
