package html

import (
	"io"
	"strings"
)

// Sink is an output which text and single bytes may be appended to.
// *strings.Builder and *bytes.Buffer are sinks.
type Sink interface {
	io.ByteWriter
	io.StringWriter
}

// Escape appends s to sink, replacing the characters
//
//    "  &  '  <  >
//
// by character entities. The replacement for the single quote is "&#47;".
// All other bytes are copied unchanged. An error is returned only if the sink
// fails.
func Escape(sink Sink, s string) error {
	for i := 0; i < len(s); i++ {
		var err error
		switch c := s[i]; c {
		case '"':
			_, err = sink.WriteString("&quot;")
		case '&':
			_, err = sink.WriteString("&amp;")
		case '\'':
			_, err = sink.WriteString("&#47;")
		case '<':
			_, err = sink.WriteString("&lt;")
		case '>':
			_, err = sink.WriteString("&gt;")
		default:
			err = sink.WriteByte(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// EscapeString returns s with HTML special characters escaped, as done by
// Escape.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	Escape(&b, s) // writing to a strings.Builder does not fail
	return b.String()
}
