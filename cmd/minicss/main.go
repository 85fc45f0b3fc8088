package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/PierreLouisLetoquart/minicss"
	"github.com/PierreLouisLetoquart/minicss/token"
)

type Option struct {
	Source []string `short:"s" long:"source" description:"[REQUIRED] Source CSS file (repeatable)" required:"true"`
	Target []string `short:"t" long:"target" description:"[OPTIONAL] Target file, one per source" required:"false"`
	Mode   string   `short:"m" long:"mode" description:"[OPTIONAL] Minify mode" choice:"text" choice:"tokens" default:"text"`
	Dump   bool     `long:"dump" description:"[OPTIONAL] Print tokens as JSON instead of minifying"`
	Debug  bool     `long:"debug" description:"[OPTIONAL] Pretty print every token to stderr"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(stdout)
			return 1
		}
	}
	if !opt.Dump && len(opt.Target) != len(opt.Source) {
		parser.WriteHelp(stdout)
		return 1
	}

	for i, src := range opt.Source {
		if !opt.Dump {
			fmt.Fprintf(stdout, "Minifying %s to %s\n", src, opt.Target[i])
		}
		if !sourceExists(src) {
			fmt.Fprintln(stderr, "Source file does not exist")
			return 1
		}
	}

	// Every source is read and scanned independently. Dumps are collected by
	// index so they are written in the order the sources were given.
	dumps := make([]tokenDump, len(opt.Source))
	eg := errgroup.Group{}
	for i, src := range opt.Source {
		i, src := i, src
		eg.Go(func() error {
			if opt.Dump {
				dump, err := loadTokens(src)
				dumps[i] = dump
				return err
			}
			return minifyFile(src, opt.Target[i], css.Mode(opt.Mode))
		})
	}
	if err := eg.Wait(); err != nil {
		log.New(stderr, "", 0).Printf("failed to process: %v", err)
		return 1
	}

	if opt.Dump {
		for _, dump := range dumps {
			if err := writeDump(stdout, stderr, dump, opt.Debug); err != nil {
				log.New(stderr, "", 0).Printf("failed to dump tokens: %v", err)
				return 1
			}
		}
		return 0
	}

	fmt.Fprintln(stdout, "DONE!")
	return 0
}

func sourceExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%q): %w", path, err)
	}
	return string(b), nil
}

func minifyFile(src, dst string, mode css.Mode) error {
	content, err := readSource(src)
	if err != nil {
		return err
	}

	out, err := css.Minify(content, mode)
	if err != nil {
		return css.WithSource(src, err)
	}

	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%q): %w", dst, err)
	}
	return nil
}

type tokenRecord struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Value any    `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type tokenDump struct {
	Source string        `json:"source"`
	Tokens []tokenRecord `json:"tokens"`

	toks []token.Token
}

// numberValue returns v, or its string form if JSON cannot represent it.
func numberValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func newTokenRecord(tok token.Token, _ int) tokenRecord {
	r := tokenRecord{
		Kind:  tok.Kind.String(),
		Text:  token.Payload(tok.Kind),
		Start: tok.Range.Start,
		End:   tok.Range.End,
	}
	switch k := tok.Kind.(type) {
	case token.Number:
		r.Value = numberValue(k.Value)
	case token.Percentage:
		r.Value = numberValue(k.Value)
	case token.Dimension:
		r.Value, r.Unit = numberValue(k.Value), k.Unit
	}
	return r
}

func loadTokens(src string) (tokenDump, error) {
	content, err := readSource(src)
	if err != nil {
		return tokenDump{}, err
	}

	toks, err := css.Tokenize(content)
	if err != nil {
		return tokenDump{}, css.WithSource(src, err)
	}
	return tokenDump{
		Source: src,
		Tokens: lo.Map(toks, newTokenRecord),
		toks:   toks,
	}, nil
}

func writeDump(stdout, stderr io.Writer, dump tokenDump, debug bool) error {
	if debug {
		for _, tok := range dump.toks {
			if _, err := pp.Fprintln(stderr, tok); err != nil {
				return fmt.Errorf("pp.Fprintln: %w", err)
			}
		}
	}
	return dumpJSON(stdout, dump)
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
