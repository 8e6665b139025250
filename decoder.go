package huffcode

import (
	"fmt"
)

// Decoder decodes bit-strings by walking a fixed Tree.  The zero value is
// not usable; call Init first.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder to use the given tree.
func (d *Decoder) Init(tree *Tree) {
	*d = Decoder{tree: tree}
}

// Tree returns the Tree used by this Decoder.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode is equivalent to the package-level Decode with this Decoder's
// tree.
func (d Decoder) Decode(bits string) ([]Symbol, error) {
	return Decode(bits, d.tree)
}

// Decode reconstructs the symbol sequence encoded in bits.
//
// A cursor starts at the root.  Each digit moves it to the Left (Bit0) or
// Right (Bit1) child; on reaching a Leaf, its symbol is emitted and the
// cursor returns to the root.  If the stream ends while the cursor is not
// at the root, the stream is malformed.
//
// For a degenerate tree, whose root is a Leaf, every digit decodes to one
// occurrence of the root's symbol regardless of its value.
//
// A nil or zero tree yields *MalformedStreamError, since no bit-string can
// be decoded with it.  On error, no partial output is returned.
//
func Decode(bits string, tree *Tree) ([]Symbol, error) {
	if tree == nil || tree.root == nil {
		return nil, &MalformedStreamError{Offset: 0, Reason: "no Huffman tree to decode with"}
	}
	if leaf, isLeaf := tree.root.(*Leaf); isLeaf {
		return decodeDegenerate(bits, leaf.Symbol)
	}

	var out []Symbol
	cursor := tree.root
	start := 0
	for offset := 0; offset < len(bits); offset++ {
		in := cursor.(*Internal)

		var next Node
		switch bits[offset] {
		case Bit0:
			next = in.Left
		case Bit1:
			next = in.Right
		default:
			return nil, &MalformedStreamError{
				Offset: offset,
				Reason: fmt.Sprintf("unexpected digit %q", bits[offset]),
			}
		}
		if next == nil {
			return nil, &MalformedStreamError{Offset: offset, Reason: "no child on this branch"}
		}

		if leaf, isLeaf := next.(*Leaf); isLeaf {
			out = append(out, leaf.Symbol)
			cursor = tree.root
			start = offset + 1
		} else {
			cursor = next
		}
	}

	if cursor != tree.root {
		return nil, &MalformedStreamError{
			Offset: len(bits),
			Reason: fmt.Sprintf("stream ends inside a code (%d trailing bits since offset %d)", len(bits)-start, start),
		}
	}
	return out, nil
}

func decodeDegenerate(bits string, sym Symbol) ([]Symbol, error) {
	out := make([]Symbol, len(bits))
	for offset := 0; offset < len(bits); offset++ {
		if bits[offset] != Bit0 && bits[offset] != Bit1 {
			return nil, &MalformedStreamError{
				Offset: offset,
				Reason: fmt.Sprintf("unexpected digit %q", bits[offset]),
			}
		}
		out[offset] = sym
	}
	return out, nil
}
