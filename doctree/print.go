package doctree

import (
	tp "github.com/xlab/treeprint"
)

// Dump returns a printable representation of a document tree, for
// debugging.
func Dump(root *Node) string {
	if root == nil {
		return "<nil>\n"
	}
	header := root.String() + "\n"
	printer := tp.New()
	for _, ch := range root.Children() {
		printNode(printer, ch)
	}
	return header + printer.String()
}

func printNode(printer tp.Tree, node *Node) {
	if node.ChildCount() == 0 {
		printer.AddNode(node.String())
		return
	}
	branch := printer.AddBranch(node.String())
	for _, ch := range node.Children() {
		printNode(branch, ch)
	}
}
