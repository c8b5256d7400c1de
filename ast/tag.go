package ast

import "fmt"

// Tag is a block-level or inline container construct. The set of tags is
// closed: only types of this package implement Tag.
//
// The HTML renderer creates markup for Paragraph, Header, CodeBlock and
// FootnoteDefinition. All other tags are rendered without markup of their
// own, but their nested content is rendered nevertheless.
type Tag interface {
	isTag()
	String() string
}

// Paragraph is a paragraph of text.
type Paragraph struct{}

// Header is a heading of a given level, usually 1…6.
type Header struct {
	Level int
}

// CodeBlock is a block of pre-formatted code. Info is the info string of a
// fenced code block, e.g. the name of a programming language.
type CodeBlock struct {
	Info string
}

// FootnoteDefinition is the body of a footnote. Label is the identifier which
// footnote references use to point to this definition.
type FootnoteDefinition struct {
	Label string
}

// BlockQuote is a quoted block.
type BlockQuote struct{}

// List is an ordered or unordered list. Start is the number of the first
// item of an ordered list.
type List struct {
	Ordered bool
	Start   int
}

// ListItem is an item of a list.
type ListItem struct{}

// Emphasis is emphasized inline text.
type Emphasis struct{}

// Strong is strongly emphasized inline text.
type Strong struct{}

// Code is an inline code span.
type Code struct{}

// Link is a hyper-link.
type Link struct {
	Destination string
	Title       string
}

// Image is an inline image. Nested content is the image's alt text.
type Image struct {
	Destination string
	Title       string
}

// Other is a container construct of an upstream producer without a
// counterpart in this package. Name identifies it for debugging.
type Other struct {
	Name string
}

func (Paragraph) isTag()          {}
func (Header) isTag()             {}
func (CodeBlock) isTag()          {}
func (FootnoteDefinition) isTag() {}
func (BlockQuote) isTag()         {}
func (List) isTag()               {}
func (ListItem) isTag()           {}
func (Emphasis) isTag()           {}
func (Strong) isTag()             {}
func (Code) isTag()               {}
func (Link) isTag()               {}
func (Image) isTag()              {}
func (Other) isTag()              {}

func (Paragraph) String() string { return "Paragraph" }
func (h Header) String() string  { return fmt.Sprintf("Header(%d)", h.Level) }
func (c CodeBlock) String() string {
	return fmt.Sprintf("CodeBlock(%q)", c.Info)
}
func (fd FootnoteDefinition) String() string {
	return fmt.Sprintf("FootnoteDefinition(%q)", fd.Label)
}
func (BlockQuote) String() string { return "BlockQuote" }
func (l List) String() string {
	if l.Ordered {
		return fmt.Sprintf("List(%d)", l.Start)
	}
	return "List"
}
func (ListItem) String() string { return "ListItem" }
func (Emphasis) String() string { return "Emphasis" }
func (Strong) String() string   { return "Strong" }
func (Code) String() string     { return "Code" }
func (l Link) String() string   { return fmt.Sprintf("Link(%q)", l.Destination) }
func (i Image) String() string  { return fmt.Sprintf("Image(%q)", i.Destination) }
func (o Other) String() string  { return fmt.Sprintf("Other(%s)", o.Name) }

var _ Tag = Paragraph{}
var _ Tag = Header{}
var _ Tag = CodeBlock{}
var _ Tag = FootnoteDefinition{}
var _ Tag = Other{}
