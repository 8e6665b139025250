package huffcode

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the symbol count of a Leaf, or the summed weight of
	// the descendants of an Internal.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries a symbol.
type Leaf struct {
	Symbol Symbol
	Freq   uint64
}

// Weight returns the number of occurrences of the leaf's symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.Freq
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Each Internal exclusively
// owns its children; no node is shared between parents.
type Internal struct {
	Freq  uint64
	Left  Node
	Right Node
}

// Weight returns Left.Weight() + Right.Weight().
func (in *Internal) Weight() uint64 {
	return in.Freq
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
