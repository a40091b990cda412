// Package node holds the generic markup node shape the deserializer
// consumes: tag, ordered attributes, ordered children, optional direct
// text. It deliberately knows nothing about UI element semantics.
package node

// Attr is one name/value attribute pair. Order is preserved from the
// source document.
type Attr struct {
	Name  string
	Value string
}

// Node is one markup element.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasChildren reports whether the node has nested element nodes.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}
