// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Program jot checks, reformats, and generates bindings for JSON documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/arbelos/jot/ast"
	"github.com/arbelos/jot/internal/gen"
)

var cli struct {
	Check checkCmd `cmd:"" help:"Parse each input and report the first error."`
	Fmt   fmtCmd   `cmd:"" help:"Reformat JSON input."`
	Gen   genCmd   `cmd:"" help:"Generate bind registrations from a sample document."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jot"),
		kong.Description("A checker, formatter, and binding generator for JSON documents."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type checkCmd struct {
	Paths []string `arg:"" optional:"" type:"existingfile" help:"Input files (stdin if none)."`
}

func (c *checkCmd) Run() error {
	var failed bool
	for _, in := range inputs(c.Paths) {
		if _, err := parseInput(in); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", in.name, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("invalid input")
	}
	return nil
}

type fmtCmd struct {
	Indent bool     `short:"i" help:"Pretty-print with indentation instead of compact output."`
	Paths  []string `arg:"" optional:"" type:"existingfile" help:"Input files (stdin if none)."`
}

func (c *fmtCmd) Run() error {
	for _, in := range inputs(c.Paths) {
		v, err := parseInput(in)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		if c.Indent {
			if err := ast.Format(os.Stdout, v); err != nil {
				return err
			}
			fmt.Println()
		} else {
			fmt.Println(v.JSON())
		}
	}
	return nil
}

type genCmd struct {
	Type    string `short:"t" default:"Root" help:"Name for the root struct."`
	Package string `short:"p" default:"main" help:"Package name for generated code."`
	Path    string `arg:"" optional:"" type:"existingfile" help:"Sample file (stdin if empty)."`
}

func (c *genCmd) Run() error {
	var paths []string
	if c.Path != "" {
		paths = []string{c.Path}
	}
	in := inputs(paths)[0]
	v, err := parseInput(in)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	src, err := gen.Source(v, gen.Options{Package: c.Package, Type: c.Type})
	if err != nil {
		return err
	}
	fmt.Print(src)
	return nil
}

type input struct {
	name string
	open func() (io.ReadCloser, error)
}

// inputs resolves the given paths to named inputs, defaulting to stdin
// when no paths are given.
func inputs(paths []string) []input {
	if len(paths) == 0 {
		return []input{{
			name: "stdin",
			open: func() (io.ReadCloser, error) { return io.NopCloser(os.Stdin), nil },
		}}
	}
	ins := make([]input, len(paths))
	for i, p := range paths {
		ins[i] = input{name: p, open: func() (io.ReadCloser, error) { return os.Open(p) }}
	}
	return ins
}

func parseInput(in input) (ast.Value, error) {
	r, err := in.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ast.Parse(r)
}
