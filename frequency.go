package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable maps each distinct Symbol of an input to its number of
// occurrences.  The zero value is an empty table.  A FrequencyTable is
// never modified after CountSymbols returns it.
type FrequencyTable struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// CountSymbols counts the occurrences of each Symbol in input.
func CountSymbols(input []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for index, sym := range input {
		assert.Assertf(sym >= 0, "input[%d] is negative symbol %d", index, sym)
		counts[sym]++
	}

	symbols := make(bySymbol, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Sort(symbols)

	return FrequencyTable{
		counts:  counts,
		symbols: symbols,
		total:   uint64(len(input)),
	}
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Count returns the number of occurrences of sym, or 0 if sym never occurs.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}

// Equal returns true iff both tables hold exactly the same counts.
func (ft FrequencyTable) Equal(other FrequencyTable) bool {
	if len(ft.symbols) != len(other.symbols) || ft.total != other.total {
		return false
	}
	for _, sym := range ft.symbols {
		if ft.counts[sym] != other.counts[sym] {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.symbols {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", sym, ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d occurrences)", len(ft.symbols), ft.total)
}

var _ fmt.Stringer = FrequencyTable{}
