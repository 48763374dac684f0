// Package converter turns a mime type registry ({"mime/type": ["ext", ...]})
// into a SQL script that repopulates a pattern -> mime type table.
package converter

import (
	"bytes"
	"fmt"
	"os"
)

// Options names the source, output and target table of a conversion.
type Options struct {
	Source string
	Output string
	Table  string
	// Index adds the "index" column to every INSERT.
	Index bool
}

// Result describes a finished conversion.
type Result struct {
	Rows       int
	Collisions []Collision
}

// Convert reads opts.Source, inverts it and writes the SQL script to
// opts.Output, replacing any existing file. Nothing is written unless the
// source was read and rendered successfully.
func Convert(opts Options) (Result, error) {
	if opts.Source == "" || opts.Output == "" || opts.Table == "" {
		return Result{}, ErrUsage
	}

	reg, err := LoadRegistry(opts.Source)
	if err != nil {
		return Result{}, err
	}

	table := Invert(reg)
	rows := table.Rows()

	var buf bytes.Buffer
	if err := Render(&buf, opts.Table, rows, opts.Index); err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", opts.Output, err)
	}

	return Result{Rows: len(rows), Collisions: table.Collisions()}, nil
}
