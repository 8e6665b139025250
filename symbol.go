package huffcode

import (
	"math"
	"strconv"
	"strings"
)

// Symbol represents a symbol in an arbitrary alphabet: a byte or a rune.
// Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// MaxByteSymbol is the largest symbol that BytesFromSymbols can represent.
const MaxByteSymbol = Symbol(math.MaxUint8)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the symbol quoted as a Go rune literal.
func (sym Symbol) String() string {
	if sym < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(sym))
}

// SymbolsFromBytes returns one Symbol per byte of p.
func SymbolsFromBytes(p []byte) []Symbol {
	out := make([]Symbol, len(p))
	for i, b := range p {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString returns one Symbol per rune of str.  Invalid UTF-8 is
// decoded as utf8.RuneError, so use SymbolsFromBytes when the input must
// round-trip byte-for-byte.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.
func BytesFromSymbols(symbols []Symbol) ([]byte, error) {
	out := make([]byte, len(symbols))
	for i, sym := range symbols {
		if sym < 0 || sym > MaxByteSymbol {
			return nil, symbolRangeError(i, sym)
		}
		out[i] = byte(sym)
	}
	return out, nil
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, sym := range symbols {
		sb.WriteRune(rune(sym))
	}
	return sb.String()
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

// }}}
