package huffcode

import (
	"strings"
)

// Encoder encodes symbol sequences with a fixed CodeTable.  The zero value
// has an empty table and fails on any non-empty input.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder to use the given table.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{table: table}
}

// Table returns the CodeTable used by this Encoder.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Encode concatenates the Code of every symbol of input, in order.  It
// returns *UnknownSymbolError for the first symbol that is not in the
// table.
func (e Encoder) Encode(input []Symbol) (string, error) {
	return Encode(input, e.table)
}

// Encode concatenates the Code of every symbol of input, in order.  It
// returns *UnknownSymbolError for the first symbol that is not in table.
// The table does not need to have been derived from input.
func Encode(input []Symbol, table CodeTable) (string, error) {
	var sb strings.Builder
	for index, sym := range input {
		hc, found := table.codes[sym]
		if !found {
			return "", &UnknownSymbolError{Symbol: sym, Index: index}
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}
