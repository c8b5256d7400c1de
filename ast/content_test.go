package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMatch(t *testing.T) {
	var tag Tag
	var content Content
	var ev Event
	//
	n := Node(B(Header{Level: 2}, I(Text("Title"))))
	switch m := n.Match(); m {
	case m.Item(&ev):
		t.Errorf("expected block to not match as item, did: %v", ev)
	case m.Block(&tag, &content):
		t.Logf("matched block %v", tag)
	default:
		t.Fatalf("expected block to match, didn't: %v", n)
	}
	assert.Equal(t, Header{Level: 2}, tag)
	//
	n = I(FootnoteReference{Label: "note1"})
	switch m := n.Match(); m {
	case m.Block(&tag, &content):
		t.Errorf("expected item to not match as block, did: %v", tag)
	case m.Item(&ev):
		t.Logf("matched item %v", ev)
	}
	assert.Equal(t, FootnoteReference{Label: "note1"}, ev)
}

func TestNodesSinglePass(t *testing.T) {
	c := Nodes(I(Text("a")), I(Text("b")))
	assert.Equal(t, 2, Drain(c))
	_, ok := c.Next()
	assert.False(t, ok, "expected content to stay exhausted")
}

func TestGroupNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.ast")
	defer teardown()
	//
	c := Group(Events(
		Start{Tag: Paragraph{}},
		Text("hi"),
		Start{Tag: Emphasis{}},
		Text("there"),
		End{Tag: Emphasis{}},
		End{Tag: Paragraph{}},
		FootnoteReference{Label: "x"},
	))
	n, ok := c.Next()
	require.True(t, ok)
	para, isBlock := n.(Block)
	require.True(t, isBlock, "expected first node to be a block, is %v", n)
	assert.Equal(t, Paragraph{}, para.Tag)
	//
	n, ok = para.Content.Next()
	require.True(t, ok)
	assert.Equal(t, I(Text("hi")), n)
	n, ok = para.Content.Next()
	require.True(t, ok)
	em := n.(Block)
	assert.Equal(t, Emphasis{}, em.Tag)
	n, _ = em.Content.Next()
	assert.Equal(t, I(Text("there")), n)
	_, ok = em.Content.Next()
	assert.False(t, ok)
	_, ok = para.Content.Next()
	assert.False(t, ok)
	//
	n, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, I(FootnoteReference{Label: "x"}), n)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestGroupSkipsUnreadContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.ast")
	defer teardown()
	//
	c := Group(Events(
		Start{Tag: CodeBlock{Info: "go"}},
		Text("x=1"),
		Start{Tag: Strong{}},
		Text("y"),
		End{Tag: Strong{}},
		End{Tag: CodeBlock{}},
		Text("after"),
	))
	n, _ := c.Next()
	if _, ok := n.(Block); !ok {
		t.Fatalf("expected a block, got %v", n)
	}
	n, ok := c.Next() // nested content never read
	require.True(t, ok)
	assert.Equal(t, I(Text("after")), n)
}

func TestGroupUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.ast")
	defer teardown()
	//
	c := Group(Events(End{Tag: Paragraph{}}, Start{Tag: Paragraph{}}, Text("open")))
	n, _ := c.Next()
	var ev Event
	switch m := n.Match(); m {
	case m.Item(&ev):
	default:
		t.Fatalf("expected stray end marker to be an item, is %v", n)
	}
	assert.True(t, IsStructural(ev))
	n, _ = c.Next()
	b := n.(Block)
	assert.Equal(t, 1, Drain(b.Content))
	_, ok := c.Next()
	assert.False(t, ok)
}

type countingSource struct {
	EventSource
	pulled int
}

func (cs *countingSource) Next() (Event, bool) {
	cs.pulled++
	return cs.EventSource.Next()
}

func TestGroupIsLazy(t *testing.T) {
	src := &countingSource{EventSource: Events(
		Start{Tag: Paragraph{}}, Text("a"), End{Tag: Paragraph{}},
		Text("b"),
	)}
	c := Group(src)
	if src.pulled != 0 {
		t.Errorf("expected no events to be pulled before first Next(), pulled %d", src.pulled)
	}
	c.Next()
	if src.pulled != 1 {
		t.Errorf("expected exactly one event to be pulled, pulled %d", src.pulled)
	}
}
