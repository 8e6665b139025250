package huffcode

import (
	"strconv"
	"strings"
)

// Bit digits used in a Code and in encoded bit-strings.
const (
	// Bit0 is appended when descending to a Left child.
	Bit0 = '0'

	// Bit1 is appended when descending to a Right child.
	Bit1 = '1'
)

// Code represents a sequence of bits, one Bit0 or Bit1 digit per bit.  The
// first digit is the branch taken at the root.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// IsValid returns true iff this Code is non-empty and consists only of
// Bit0 and Bit1 digits.
func (hc Code) IsValid() bool {
	if len(hc) == 0 {
		return false
	}
	for i := 0; i < len(hc); i++ {
		if hc[i] != Bit0 && hc[i] != Bit1 {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code
// has itself as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

// type byCode {{{

type byCode []Code

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i] < list[j]
}

// }}}
