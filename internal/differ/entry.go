// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strconv"
	"strings"

	"github.com/setdiff/setdiff/internal/record"
)

// Kind classifies an Entry.
type Kind int

const (
	// Changed is a scalar that holds a different value on each side.
	Changed Kind = iota
	// TypeChanged is a node whose kind differs between the sides.
	TypeChanged
	// FieldAdded is a record field present only on the new side.
	FieldAdded
	// FieldRemoved is a record field present only on the old side.
	FieldRemoved
	// ElementsAdded lists trailing list elements present only on the new side.
	ElementsAdded
	// ElementsRemoved lists trailing list elements present only on the old side.
	ElementsRemoved
)

var kindNames = map[Kind]string{
	Changed:         "changed",
	TypeChanged:     "type-changed",
	FieldAdded:      "field-added",
	FieldRemoved:    "field-removed",
	ElementsAdded:   "elements-added",
	ElementsRemoved: "elements-removed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Step is one hop of a Path: a record field or a list index.
type Step struct {
	Field   string
	Index   int
	IsIndex bool
}

// FieldStep returns a step into the named field.
func FieldStep(name string) Step { return Step{Field: name} }

// IndexStep returns a step to list position i.
func IndexStep(i int) Step { return Step{Index: i, IsIndex: true} }

func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}

// Path locates a node from the compared root. The empty path is the root.
type Path []Step

// String renders the path as "stats.attack" or "tags[1]".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !s.IsIndex {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// child appends s without sharing the backing array of p.
func (p Path) child(s Step) Path {
	return append(p[:len(p):len(p)], s)
}

// Entry is a single difference.
//
// Changed and TypeChanged carry Old and New. FieldRemoved carries Old,
// FieldAdded carries New. ElementsAdded and ElementsRemoved carry the extra
// elements and the Offset of the first one.
type Entry struct {
	Path     Path
	Kind     Kind
	Old      record.Value
	New      record.Value
	Elements []record.Value
	Offset   int
}
