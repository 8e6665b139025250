package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/chronos-tachyon/huffcode"
)

type input struct {
	name string
	data []byte
}

// loadInputs returns the files matched by cfg.glob in lexical order, or
// cfg.text alone when no pattern is given.
func loadInputs(cfg config) ([]input, error) {
	if cfg.glob == "" {
		return []input{{name: "text", data: []byte(cfg.text)}}, nil
	}

	matches, err := doublestar.FilepathGlob(cfg.glob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad -glob pattern %q: %w", cfg.glob, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("-glob pattern %q matched no files", cfg.glob)
	}
	sort.Strings(matches)

	out := make([]input, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, input{name: path, data: data})
	}
	return out, nil
}

func (in input) symbols(runes bool) []huffcode.Symbol {
	if runes {
		return huffcode.SymbolsFromString(string(in.data))
	}
	return huffcode.SymbolsFromBytes(in.data)
}

func (in input) render(output []huffcode.Symbol, runes bool) (string, error) {
	if runes {
		return huffcode.StringFromSymbols(output), nil
	}
	raw, err := huffcode.BytesFromSymbols(output)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
