// Command huffdemo builds a Huffman code for each input, prints the code
// table, the encoded bit-string and the decoded text, and checks that the
// decoded text equals the input.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/codeccache"
)

const defaultText = "grigoryan"

type config struct {
	text      string
	glob      string
	runes     bool
	asJSON    bool
	chartPath string
	cacheSize int
	logLevel  slog.Level
}

func main() {
	var cfg config
	flag.StringVar(&cfg.text, "text", defaultText, "input text, used when -glob is empty")
	flag.StringVar(&cfg.glob, "glob", "", "doublestar pattern of input files, e.g. 'testdata/**/*.txt'")
	flag.BoolVar(&cfg.runes, "runes", false, "use one symbol per UTF-8 rune instead of one per byte")
	flag.BoolVar(&cfg.asJSON, "json", false, "print the code table as JSON")
	flag.StringVar(&cfg.chartPath, "chart", "", "write an SVG chart of code lengths for the last input to this path")
	flag.IntVar(&cfg.cacheSize, "cache", 64, "number of codecs to keep for inputs with identical symbol counts (minimum 3)")
	flag.TextVar(&cfg.logLevel, "log-level", slog.LevelWarn, "log level: DEBUG, INFO, WARN or ERROR")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "huffdemo: %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	inputs, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	cache := codeccache.New(cfg.cacheSize, slog.Default())
	var last *huffcode.Codec
	for _, in := range inputs {
		codec, err := process(cfg, cache, in, w)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		last = codec
	}

	stats := cache.Stats()
	slog.Info("cacheStats", "hits", stats.Hits, "misses", stats.Misses, "collisions", stats.Collisions, "evictions", stats.Evictions)

	if cfg.chartPath != "" && last != nil {
		if err := writeChart(cfg.chartPath, last.Table()); err != nil {
			return err
		}
		slog.Info("chartWritten", "path", cfg.chartPath)
	}
	return nil
}

func process(cfg config, cache *codeccache.Cache, in input, w io.Writer) (*huffcode.Codec, error) {
	symbols := in.symbols(cfg.runes)
	codec, hit, err := cache.Get(symbols)
	if err != nil {
		return nil, err
	}
	slog.Info("codecReady", "input", in.name, "codec", codec.String(), "cached", hit)

	bits, output, err := codec.RoundTrip(symbols)
	if err != nil {
		return nil, err
	}
	decoded, err := in.render(output, cfg.runes)
	if err != nil {
		return nil, err
	}
	if decoded != string(in.data) {
		return nil, fmt.Errorf("%w: decoded text is not byte-for-byte equal to the input", huffcode.ErrRoundTrip)
	}

	if cfg.glob != "" {
		fmt.Fprintf(w, "== %s\n", in.name)
	}
	if cfg.asJSON {
		raw, err := json.MarshalIndent(codec.Table(), "", "  ")
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "%s\n", raw)
	} else {
		fmt.Fprintln(w, "Huffman codes:")
		table := codec.Table()
		for _, sym := range table.Symbols() {
			hc, _ := table.Lookup(sym)
			fmt.Fprintf(w, "%s: %s\n", sym, string(hc))
		}
	}
	fmt.Fprintf(w, "Encoded text: %s\n", bits)
	fmt.Fprintf(w, "Decoded text: %s\n", decoded)
	return codec, nil
}

func errorKind(err error) string {
	var (
		emptyErr     *huffcode.EmptyInputError
		unknownErr   *huffcode.UnknownSymbolError
		malformedErr *huffcode.MalformedStreamError
	)
	switch {
	case errors.As(err, &emptyErr):
		return "EmptyInputError"
	case errors.As(err, &unknownErr):
		return "UnknownSymbolError"
	case errors.As(err, &malformedErr):
		return "MalformedStreamError"
	case errors.Is(err, huffcode.ErrRoundTrip):
		return "RoundTripError"
	default:
		return "error"
	}
}
