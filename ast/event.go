package ast

import "fmt"

// Event is a leaf of a document, or—for Start and End—a structural marker of
// a flat event stream. The set of events is closed: only types of this
// package implement Event.
//
// Start and End are consumed by Group and will never be part of a
// well-formed document tree.
type Event interface {
	isEvent()
	String() string
}

// Text is text content. Producers are trusted to have escaped it for HTML.
type Text string

// HTML is a block of raw HTML, passed through unchanged.
type HTML string

// InlineHTML is raw inline HTML, passed through unchanged.
type InlineHTML string

// FootnoteReference references the footnote definition with the same label.
type FootnoteReference struct {
	Label string
}

// Start opens a block of a flat event stream.
type Start struct {
	Tag Tag
}

// End closes the innermost open block of a flat event stream.
type End struct {
	Tag Tag
}

// SoftBreak is a soft line break.
type SoftBreak struct{}

// HardBreak is a hard line break.
type HardBreak struct{}

func (Text) isEvent()              {}
func (HTML) isEvent()              {}
func (InlineHTML) isEvent()        {}
func (FootnoteReference) isEvent() {}
func (Start) isEvent()             {}
func (End) isEvent()               {}
func (SoftBreak) isEvent()         {}
func (HardBreak) isEvent()         {}

func (t Text) String() string       { return fmt.Sprintf("Text(%q)", string(t)) }
func (h HTML) String() string       { return fmt.Sprintf("HTML(%q)", string(h)) }
func (h InlineHTML) String() string { return fmt.Sprintf("InlineHTML(%q)", string(h)) }
func (fr FootnoteReference) String() string {
	return fmt.Sprintf("FootnoteReference(%q)", fr.Label)
}
func (s Start) String() string { return fmt.Sprintf("Start(%v)", s.Tag) }
func (e End) String() string   { return fmt.Sprintf("End(%v)", e.Tag) }
func (SoftBreak) String() string {
	return "SoftBreak"
}
func (HardBreak) String() string {
	return "HardBreak"
}

// IsStructural is true for Start and End markers.
func IsStructural(ev Event) bool {
	switch ev.(type) {
	case Start, End:
		return true
	}
	return false
}
