// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is a local directory of set files. It serves as Catalog, as Candidate
// and as a Reference.
type Dir struct {
	Root string
	// ListSuffix selects catalog files and is stripped to form set names.
	ListSuffix string
	// ReadSuffix is appended to a set name when reading it.
	ReadSuffix string
}

// List returns the sorted names of <Root>/*<ListSuffix>.
func (d *Dir) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), d.ListSuffix) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), d.ListSuffix)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Read returns the contents of <Root>/<name><ReadSuffix>. A missing file is an
// error.
func (d *Dir) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(d.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return gunzip(data)
}

// Fetch is Read with a missing file reported as ErrNotFound.
func (d *Dir) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := d.Read(ctx, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", d.path(name), ErrNotFound)
	}
	return data, err
}

func (d *Dir) String() string {
	return d.Root
}

func (d *Dir) path(name string) string {
	return filepath.Join(d.Root, name+d.ReadSuffix)
}
