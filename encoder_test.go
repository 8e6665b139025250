package huffcode

import (
	"errors"
	"testing"
)

func makeTestEncoder(t *testing.T, text string) Encoder {
	t.Helper()
	tree, err := BuildTree(SymbolsFromString(text))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	var e Encoder
	e.Init(DeriveCodes(tree))
	return e
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder(t, "grigoryan")

	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "grigoryan", expect: "1110001111110100110010100"},
		{input: "", expect: ""},
		{input: "r", expect: "00"},
		{input: "nary", expect: "10001000110"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual, err := e.Encode(SymbolsFromString(row.input))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	table, err := NewCodeTable(map[Symbol]Code{'a': "0", 'b': "1"})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}

	bits, err := Encode(SymbolsFromString("abcab"), table)
	var unknownErr *UnknownSymbolError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownSymbolError, got %v", err)
	}
	if unknownErr.Symbol != 'c' || unknownErr.Index != 2 {
		t.Errorf("expected symbol 'c' at index 2, got %s at index %d", unknownErr.Symbol, unknownErr.Index)
	}
	if bits != "" {
		t.Errorf("expected no output on error, got %q", bits)
	}
}

func TestEncoder_ZeroValue(t *testing.T) {
	var e Encoder
	if _, err := e.Encode(SymbolsFromString("a")); err == nil {
		t.Errorf("expected failure from zero Encoder")
	}
}

func TestEncode_SingleSymbol(t *testing.T) {
	e := makeTestEncoder(t, "aaaa")
	actual, err := e.Encode(SymbolsFromString("aaa"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if actual != "000" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "000", actual)
	}
}
