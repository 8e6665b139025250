package huffcode

import (
	"errors"
	"fmt"
)

// ErrTableMismatch is returned when a CodeTable supplied alongside a Tree
// was not derived from that Tree.
var ErrTableMismatch = errors.New("huffcode: code table does not match tree")

// ErrNoTree is returned when an operation that needs a Huffman tree is
// given a nil or zero Tree.
var ErrNoTree = errors.New("huffcode: no Huffman tree")

// ErrRoundTrip is returned by Codec.RoundTrip when the decoded output
// differs from the input.
var ErrRoundTrip = errors.New("huffcode: decoded output differs from input")

// ErrSymbolRange is wrapped by errors for symbols that cannot be converted
// to the requested representation.
var ErrSymbolRange = errors.New("huffcode: symbol out of range")

// EmptyInputError is returned when a tree is requested for an input that
// contains no symbols.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "huffcode: cannot build a Huffman tree from empty input"
}

// UnknownSymbolError is returned by Encode when the input contains a
// symbol that has no entry in the CodeTable.
type UnknownSymbolError struct {
	// Symbol is the symbol that was not found.
	Symbol Symbol

	// Index is the position of Symbol within the input.
	Index int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffcode: symbol %s at index %d is not in the code table", err.Symbol, err.Index)
}

// MalformedStreamError is returned by Decode when the bit-string cannot be
// decoded with the given tree.
type MalformedStreamError struct {
	// Offset is the index of the digit at which decoding failed.  For a
	// stream that ends mid-path, Offset equals the stream length.
	Offset int

	// Reason describes the failure.
	Reason string
}

func (err *MalformedStreamError) Error() string {
	return fmt.Sprintf("huffcode: malformed bit-string at offset %d: %s", err.Offset, err.Reason)
}

func symbolRangeError(index int, sym Symbol) error {
	return fmt.Errorf("%w: %s at index %d does not fit in a byte", ErrSymbolRange, sym, index)
}

var (
	_ error = (*EmptyInputError)(nil)
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedStreamError)(nil)
)
