package huffcode

import (
	"fmt"
)

// Codec bundles a Huffman tree with the CodeTable derived from it.  A
// Codec is read-only after construction, so its methods may be called
// concurrently.
type Codec struct {
	freqs FrequencyTable
	tree  *Tree
	enc   Encoder
	dec   Decoder
}

// NewCodec counts the symbols of input, builds the tree and derives the
// code table.  It returns *EmptyInputError if input is empty.
func NewCodec(input []Symbol) (*Codec, error) {
	return NewCodecFromTable(CountSymbols(input))
}

// NewCodecFromTable builds the tree and derives the code table for an
// existing FrequencyTable.  It returns *EmptyInputError if the table is
// empty.
func NewCodecFromTable(freqs FrequencyTable) (*Codec, error) {
	tree, err := BuildTreeFromTable(freqs)
	if err != nil {
		return nil, err
	}
	c := &Codec{freqs: freqs, tree: tree}
	c.enc.Init(DeriveCodes(tree))
	c.dec.Init(tree)
	return c, nil
}

// NewCodecFromParts pairs an existing tree with an independently supplied
// table.  It returns ErrNoTree for a nil or zero tree, and
// ErrTableMismatch unless the table is exactly the one DeriveCodes would
// produce for the tree.
func NewCodecFromParts(tree *Tree, table CodeTable) (*Codec, error) {
	if tree == nil || tree.root == nil {
		return nil, ErrNoTree
	}
	derived := DeriveCodes(tree)
	if !derived.Equal(table) {
		return nil, fmt.Errorf("%w: fingerprint %016x, expected %016x", ErrTableMismatch, table.Fingerprint(), derived.Fingerprint())
	}
	c := &Codec{tree: tree}
	c.enc.Init(table)
	c.dec.Init(tree)
	return c, nil
}

// Frequencies returns the FrequencyTable the tree was built from.  It is
// empty for a Codec made by NewCodecFromParts.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freqs
}

// Tree returns the Huffman tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the code table.
func (c *Codec) Table() CodeTable {
	return c.enc.Table()
}

// Encode encodes input with the code table.
func (c *Codec) Encode(input []Symbol) (string, error) {
	return c.enc.Encode(input)
}

// Decode decodes bits by walking the tree.
func (c *Codec) Decode(bits string) ([]Symbol, error) {
	return c.dec.Decode(bits)
}

// RoundTrip encodes input, decodes the result, and checks that the decoded
// symbols equal input.  It returns the encoded bit-string and the decoded
// symbols.
func (c *Codec) RoundTrip(input []Symbol) (string, []Symbol, error) {
	bits, err := c.Encode(input)
	if err != nil {
		return "", nil, err
	}
	output, err := c.Decode(bits)
	if err != nil {
		return bits, nil, err
	}
	if len(output) != len(input) {
		return bits, nil, fmt.Errorf("%w: %d symbols in, %d symbols out", ErrRoundTrip, len(input), len(output))
	}
	for i := range input {
		if input[i] != output[i] {
			return bits, nil, fmt.Errorf("%w: symbol %d is %s, expected %s", ErrRoundTrip, i, output[i], input[i])
		}
	}
	return bits, output, nil
}

// String returns a brief description of this codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, fingerprint %016x)", c.tree.numLeaves, c.enc.table.Fingerprint())
}

var _ fmt.Stringer = (*Codec)(nil)
