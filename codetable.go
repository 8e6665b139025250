package huffcode

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  A CodeTable is immutable and
// may be shared freely between goroutines.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols []Symbol
}

// DeriveCodes walks the tree and assigns each leaf the path from the root:
// Bit0 for every Left branch and Bit1 for every Right branch.
//
// A degenerate tree, whose root is itself a Leaf, assigns that symbol the
// one-bit Code "0".  Decode consumes exactly one digit per occurrence in
// that case.  A nil or zero tree yields an empty table.
//
func DeriveCodes(t *Tree) CodeTable {
	if t == nil || t.root == nil {
		return CodeTable{}
	}

	codes := make(map[Symbol]Code, t.numLeaves)

	root, isInternal := t.root.(*Internal)
	if !isInternal {
		leaf := t.root.(*Leaf)
		codes[leaf.Symbol] = Code(Bit0)
		return makeCodeTable(codes)
	}

	// Walk the tree with an explicit stack of Internal nodes.
	//
	// stackItem.x tracks where we are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path holds one digit per stack entry other than the root.

	type stackItem struct {
		node *Internal
		x    byte
	}

	stack := make([]stackItem, 0, t.numInternal)
	path := make([]byte, 0, t.numInternal)

	processChild := func(child Node, digit byte) {
		path = append(path, digit)
		switch n := child.(type) {
		case *Leaf:
			codes[n.Symbol] = Code(path)
			path = path[:len(path)-1]
		case *Internal:
			stack = append(stack, stackItem{node: n})
		}
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, Bit0)
		case 1:
			processChild(top.node.Right, Bit1)
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(codes) == t.numLeaves, "derived %d codes for %d leaves", len(codes), t.numLeaves)
	return makeCodeTable(codes)
}

// NewCodeTable constructs a CodeTable from an explicit mapping, such as one
// received from another party.  The mapping is copied and then checked
// with Validate.
func NewCodeTable(m map[Symbol]Code) (CodeTable, error) {
	codes := make(map[Symbol]Code, len(m))
	for sym, hc := range m {
		if sym < 0 {
			return CodeTable{}, fmt.Errorf("huffcode: negative symbol %d in code table", sym)
		}
		codes[sym] = hc
	}
	ct := makeCodeTable(codes)
	if err := ct.Validate(); err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

func makeCodeTable(codes map[Symbol]Code) CodeTable {
	symbols := make(bySymbol, 0, len(codes))
	for sym := range codes {
		symbols = append(symbols, sym)
	}
	sort.Sort(symbols)
	return CodeTable{codes: codes, symbols: symbols}
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.symbols)
}

// Lookup returns the Code for sym.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Symbols returns the symbols of the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.symbols))
	copy(out, ct.symbols)
	return out
}

// Equal returns true iff both tables map exactly the same symbols to
// exactly the same codes.
func (ct CodeTable) Equal(other CodeTable) bool {
	if len(ct.symbols) != len(other.symbols) {
		return false
	}
	for _, sym := range ct.symbols {
		hc, found := other.codes[sym]
		if !found || hc != ct.codes[sym] {
			return false
		}
	}
	return true
}

// Validate checks that every Code is valid and that no Code is a prefix
// of another.
func (ct CodeTable) Validate() error {
	if len(ct.symbols) == 0 {
		return fmt.Errorf("huffcode: code table is empty")
	}

	sorted := make(byCode, 0, len(ct.symbols))
	for _, sym := range ct.symbols {
		hc := ct.codes[sym]
		if !hc.IsValid() {
			return fmt.Errorf("huffcode: symbol %s has invalid code %s", sym, hc)
		}
		sorted = append(sorted, hc)
	}
	sort.Sort(sorted)

	// In lexical order, any Code that is a prefix of another Code is also
	// a prefix of its immediate successor.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].HasPrefix(sorted[i-1]) {
			return fmt.Errorf("huffcode: code %s is a prefix of code %s", sorted[i-1], sorted[i])
		}
	}
	return nil
}

// Fingerprint returns a 64-bit hash of the (Symbol, Code) entries.  Two
// tables have equal fingerprints iff (barring hash collisions) they map
// the same symbols to the same codes.
func (ct CodeTable) Fingerprint() uint64 {
	d := xxhash.New()
	var scratch [8]byte
	for _, sym := range ct.symbols {
		hc := ct.codes[sym]
		binary.BigEndian.PutUint32(scratch[0:4], uint32(sym))
		binary.BigEndian.PutUint32(scratch[4:8], uint32(len(hc)))
		_, _ = d.Write(scratch[:])
		_, _ = d.WriteString(string(hc))
	}
	return d.Sum64()
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, sym := range ct.symbols {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this table.
func (ct CodeTable) String() string {
	var minSize, maxSize int
	for i, sym := range ct.symbols {
		size := len(ct.codes[sym])
		if i == 0 || minSize > size {
			minSize = size
		}
		if i == 0 || maxSize < size {
			maxSize = size
		}
	}
	return fmt.Sprintf("(code table with %d symbols, with code lengths of %d .. %d bits)", len(ct.symbols), minSize, maxSize)
}

// MarshalJSON encodes the table as a JSON object whose keys are the
// symbols, each written as the UTF-8 encoding of a single rune.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(ct.symbols))
	for _, sym := range ct.symbols {
		if !utf8.ValidRune(rune(sym)) {
			return nil, fmt.Errorf("huffcode: cannot marshal symbol %d as JSON: not a valid rune", sym)
		}
		m[string(rune(sym))] = string(ct.codes[sym])
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a table written by MarshalJSON.
func (ct *CodeTable) UnmarshalJSON(raw []byte) error {
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}

	codes := make(map[Symbol]Code, len(m))
	for key, value := range m {
		ch, size := utf8.DecodeRuneInString(key)
		if (ch == utf8.RuneError && size <= 1) || size != len(key) {
			return fmt.Errorf("huffcode: code table key %q is not exactly one rune", key)
		}
		codes[Symbol(ch)] = Code(value)
	}

	table, err := NewCodeTable(codes)
	if err != nil {
		return err
	}
	*ct = table
	return nil
}

var (
	_ fmt.Stringer     = CodeTable{}
	_ json.Marshaler   = CodeTable{}
	_ json.Unmarshaler = (*CodeTable)(nil)
)
