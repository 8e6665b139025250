package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman tree.  A Tree is immutable once built and may be shared
// freely between goroutines.
type Tree struct {
	root        Node
	numLeaves   int
	numInternal int
}

// BuildTree counts the symbols of input and builds a Huffman tree from the
// counts.  It returns *EmptyInputError if input is empty.
func BuildTree(input []Symbol) (*Tree, error) {
	return BuildTreeFromTable(CountSymbols(input))
}

// BuildTreeFromTable builds a Huffman tree from a FrequencyTable.  It
// returns *EmptyInputError if the table has no entries.
//
// The two lowest-weight nodes are repeatedly removed from a min-heap and
// replaced by an Internal node whose Left is the first one removed and
// whose Right is the second.  Equal weights are removed in creation order
// (leaves by ascending symbol, then Internal nodes in merge order), so the
// tree shape is deterministic.
//
// A table with a single entry yields a degenerate tree whose root is a
// Leaf.
//
func BuildTreeFromTable(ft FrequencyTable) (*Tree, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, &EmptyInputError{}
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]nodeAndSeq, 0, numLeaves)}
	var seq uint32
	for _, sym := range ft.symbols {
		freq := ft.counts[sym]
		assert.Assertf(freq != 0, "symbol %s has zero frequency", sym)
		h.list = append(h.list, nodeAndSeq{&Leaf{Symbol: sym, Freq: freq}, seq})
		seq++
	}
	h.Init()

	// Step 2: merge the two lightest nodes until only the root remains.

	var numInternal int
	for h.Len() > 1 {
		a := h.PopNode()
		b := h.PopNode()
		merged := &Internal{
			Freq:  a.node.Weight() + b.node.Weight(),
			Left:  a.node,
			Right: b.node,
		}
		h.PushNode(nodeAndSeq{merged, seq})
		seq++
		numInternal++
	}

	root := h.PopNode().node
	assert.Assertf(root.Weight() == ft.Total(), "root weight %d != input length %d", root.Weight(), ft.Total())
	assert.Assertf(numInternal == numLeaves-1, "%d internal nodes for %d leaves", numInternal, numLeaves)

	return &Tree{
		root:        root,
		numLeaves:   numLeaves,
		numInternal: numInternal,
	}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

// NumLeaves returns the number of leaves, which equals the number of
// distinct symbols in the input.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumInternal returns the number of Internal nodes, which is always
// NumLeaves() - 1.
func (t *Tree) NumInternal() int {
	return t.numInternal
}

// Weight returns the weight of the root, which equals the input length.
func (t *Tree) Weight() uint64 {
	return t.root.Weight()
}

// IsDegenerate returns true iff the root is a Leaf, i.e. the input had
// exactly one distinct symbol.
func (t *Tree) IsDegenerate() bool {
	_, isLeaf := t.root.(*Leaf)
	return isLeaf
}

// Dump writes a programmer-readable debugging dump of the tree to the
// given writer, one node per line in pre-order, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	type stackItem struct {
		node  Node
		depth int
		label string
	}

	stack := []stackItem{{t.root, 1, "root"}}
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat("\t", item.depth)
		switch n := item.node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "%s%s: Leaf(%s, %d)\n", indent, item.label, n.Symbol, n.Freq)
		case *Internal:
			fmt.Fprintf(&buf, "%s%s: Internal(%d)\n", indent, item.label, n.Freq)
			stack = append(stack, stackItem{n.Right, item.depth + 1, "1"})
			stack = append(stack, stackItem{n.Left, item.depth + 1, "0"})
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, %d internal nodes, weight %d)", t.numLeaves, t.numInternal, t.root.Weight())
}

var _ fmt.Stringer = (*Tree)(nil)
