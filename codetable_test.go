package huffcode

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
)

func TestDeriveCodes(t *testing.T) {
	tree, err := BuildTree(makeTestInput(5, 9, 12, 13, 16, 45))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLookup('a') = \"1100\"\n",
		"\tLookup('b') = \"1101\"\n",
		"\tLookup('c') = \"100\"\n",
		"\tLookup('d') = \"101\"\n",
		"\tLookup('e') = \"111\"\n",
		"\tLookup('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(code table with 6 symbols, with code lengths of 1 .. 4 bits)"
	if actualString := ct.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	if err := ct.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestDeriveCodes_Grigoryan(t *testing.T) {
	tree, err := BuildTree(SymbolsFromString("grigoryan"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)

	expect := map[Symbol]Code{
		'r': "00",
		'a': "010",
		'i': "011",
		'n': "100",
		'o': "101",
		'y': "110",
		'g': "111",
	}
	if ct.Len() != len(expect) {
		t.Errorf("expected %d codes, got %d", len(expect), ct.Len())
	}
	for sym, expectCode := range expect {
		actualCode, found := ct.Lookup(sym)
		if !found {
			t.Errorf("no code for %s", sym)
			continue
		}
		if actualCode != expectCode {
			t.Errorf("wrong code for %s:\n\texpect: %s\n\tactual: %s", sym, expectCode, actualCode)
		}
	}
}

func TestDeriveCodes_SingleSymbol(t *testing.T) {
	tree, err := BuildTree(SymbolsFromString("aaaa"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)
	hc, found := ct.Lookup('a')
	if !found || hc != "0" {
		t.Errorf("expected code \"0\" for 'a', got %s (found=%v)", hc, found)
	}
	if ct.Len() != 1 {
		t.Errorf("expected 1 code, got %d", ct.Len())
	}
}

func TestDeriveCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		input := make([]Symbol, 2+rng.Intn(500))
		for i := range input {
			input[i] = Symbol(rng.Intn(64))
		}
		input[0], input[1] = 100, 101

		tree, err := BuildTree(input)
		if err != nil {
			t.Fatalf("trial %d: BuildTree failed: %v", trial, err)
		}
		ct := DeriveCodes(tree)

		symbols := ct.Symbols()
		for _, a := range symbols {
			ca, _ := ct.Lookup(a)
			if ca.Len() == 0 {
				t.Errorf("trial %d: empty code for %s", trial, a)
			}
			for _, b := range symbols {
				if a == b {
					continue
				}
				cb, _ := ct.Lookup(b)
				if cb.HasPrefix(ca) {
					t.Errorf("trial %d: code %s for %s is a prefix of code %s for %s", trial, ca, a, cb, b)
				}
			}
		}
	}
}

func TestNewCodeTable_Validate(t *testing.T) {
	type testRow struct {
		name  string
		codes map[Symbol]Code
		ok    bool
	}

	testData := [...]testRow{
		{name: "valid", codes: map[Symbol]Code{'a': "0", 'b': "10", 'c': "11"}, ok: true},
		{name: "single", codes: map[Symbol]Code{'a': "0"}, ok: true},
		{name: "empty-table", codes: map[Symbol]Code{}, ok: false},
		{name: "empty-code", codes: map[Symbol]Code{'a': "", 'b': "1"}, ok: false},
		{name: "bad-digit", codes: map[Symbol]Code{'a': "0", 'b': "12"}, ok: false},
		{name: "prefix", codes: map[Symbol]Code{'a': "0", 'b': "01", 'c': "1"}, ok: false},
		{name: "duplicate", codes: map[Symbol]Code{'a': "10", 'b': "10", 'c': "0"}, ok: false},
		{name: "negative", codes: map[Symbol]Code{-2: "0", 'b': "1"}, ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := NewCodeTable(row.codes)
			if row.ok && err != nil {
				t.Errorf("expected success, got %v", err)
			}
			if !row.ok && err == nil {
				t.Errorf("expected failure, got success")
			}
		})
	}
}

func TestCodeTable_Fingerprint(t *testing.T) {
	tree, err := BuildTree(SymbolsFromString("grigoryan"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	a := DeriveCodes(tree)
	b := DeriveCodes(tree)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("fingerprints differ for identical tables: %016x vs %016x", a.Fingerprint(), b.Fingerprint())
	}

	c, err := NewCodeTable(map[Symbol]Code{'r': "00", 'a': "010", 'i': "011", 'n': "100", 'o': "101", 'y': "111", 'g': "110"})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("fingerprints equal for different tables: %016x", a.Fingerprint())
	}
}

func TestCodeTable_MarshalJSON(t *testing.T) {
	tree, err := BuildTree(SymbolsFromString("grigoryan"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)

	raw, err := json.Marshal(ct)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	expectJSON := `{"a":"010","g":"111","i":"011","n":"100","o":"101","r":"00","y":"110"}`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestCodeTable_UnmarshalJSON(t *testing.T) {
	var ct CodeTable
	err := json.Unmarshal([]byte(`{"a":"0","ю":"10","\n":"11"}`), &ct)
	if err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLookup('\\n') = \"11\"\n",
		"\tLookup('a') = \"0\"\n",
		"\tLookup('ю') = \"10\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	for _, bad := range []string{`{"ab":"0"}`, `{"":"0"}`, `{"a":"0","b":"01"}`, `[1,2]`} {
		var ct2 CodeTable
		if err := json.Unmarshal([]byte(bad), &ct2); err == nil {
			t.Errorf("expected failure for %s", bad)
		}
	}
}

func TestDeriveCodes_NoTree(t *testing.T) {
	for _, tree := range []*Tree{nil, {}} {
		if ct := DeriveCodes(tree); ct.Len() != 0 {
			t.Errorf("expected empty table, got %s", ct)
		}
	}
}

func TestCodeTable_Equal(t *testing.T) {
	tree, err := BuildTree(SymbolsFromString("grigoryan"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	derived := DeriveCodes(tree)

	same, err := NewCodeTable(map[Symbol]Code{'r': "00", 'a': "010", 'i': "011", 'n': "100", 'o': "101", 'y': "110", 'g': "111"})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	swapped, err := NewCodeTable(map[Symbol]Code{'r': "00", 'a': "010", 'i': "011", 'n': "100", 'o': "101", 'y': "111", 'g': "110"})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	missing, err := NewCodeTable(map[Symbol]Code{'r': "00", 'a': "010", 'i': "011", 'n': "100", 'o': "101", 'y': "11"})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}

	if !derived.Equal(same) || !same.Equal(derived) {
		t.Errorf("expected %s to equal %s", derived, same)
	}
	if derived.Equal(swapped) {
		t.Errorf("expected tables with swapped codes to differ")
	}
	if derived.Equal(missing) || missing.Equal(derived) {
		t.Errorf("expected tables with different symbols to differ")
	}
}
