// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/setdiff/setdiff/internal/runner"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "yaml", "delta"}

// Options tune rendering.
type Options struct {
	Format string
	Color  bool
	// Title, when set, heads the text and delta output of a set.
	Title string
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Writer renders results one at a time. JSON is written as one document per
// line, YAML as a stream of documents.
type Writer struct {
	w    io.Writer
	opts Options
	yaml *yaml.Encoder
}

// NewWriter returns a Writer for opts.Format, which must be valid.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	if opts.Format == "" {
		opts.Format = "text"
	}
	if !ValidFormat(opts.Format) {
		return nil, fmt.Errorf("unknown output format %q, want one of %v", opts.Format, Formats)
	}
	return &Writer{w: w, opts: opts}, nil
}

// Write renders one result. Text and delta output skip results without
// differences. JSON and YAML include every result with its status.
func (rw *Writer) Write(res runner.Result, title string) error {
	opts := rw.opts
	opts.Title = title

	switch opts.Format {
	case "json":
		b, err := json.Marshal(NewDocument(res))
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", res.Name, err)
		}
		_, err = fmt.Fprintln(rw.w, string(b))
		return err
	case "yaml":
		if rw.yaml == nil {
			rw.yaml = yaml.NewEncoder(rw.w)
			rw.yaml.SetIndent(2)
		}
		if err := rw.yaml.Encode(NewDocument(res)); err != nil {
			return fmt.Errorf("failed to marshal %s: %w", res.Name, err)
		}
		return nil
	case "delta":
		return Delta(rw.w, res.Report, opts)
	default:
		return Text(rw.w, res.Report, opts)
	}
}

// Close flushes any buffered document stream.
func (rw *Writer) Close() error {
	if rw.yaml != nil {
		return rw.yaml.Close()
	}
	return nil
}
