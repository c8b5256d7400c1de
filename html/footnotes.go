package html

// Footnotes assigns indices to footnote labels. The first label seen gets
// index 1, the second one index 2, and so on. A label keeps its index for
// the lifetime of the tracker, no matter if it is seen as a reference or as
// a definition.
//
// The zero value is an empty tracker ready to use.
type Footnotes struct {
	indices map[string]int
	labels  []string
}

// Index returns the index of a footnote label, assigning the next free index
// if the label is new.
func (fn *Footnotes) Index(label string) int {
	if inx, ok := fn.indices[label]; ok {
		return inx
	}
	if fn.indices == nil {
		fn.indices = make(map[string]int)
	}
	inx := len(fn.indices) + 1
	fn.indices[label] = inx
	fn.labels = append(fn.labels, label)
	tracer().Debugf("footnote %q gets index %d", label, inx)
	return inx
}

// Len returns the number of labels known.
func (fn *Footnotes) Len() int {
	return len(fn.labels)
}

// Labels returns the known labels in order of their indices.
func (fn *Footnotes) Labels() []string {
	labels := make([]string, len(fn.labels))
	copy(labels, fn.labels)
	return labels
}
