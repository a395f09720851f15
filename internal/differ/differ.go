// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/setdiff/setdiff/internal/record"
)

// Diff compares oldValue and newValue and returns every difference in a deterministic
// order, or nil when they are structurally equal.
//
// Records are walked old fields first, in their order, then fields that only
// the new record has. Lists are compared by position; extra trailing
// elements are reported as one entry. Values of different kinds are reported
// once with both full values and are not descended into.
func Diff(oldValue, newValue record.Value) []Entry {
	var w walker
	w.walk(nil, oldValue, newValue)
	return w.entries
}

// Equal reports whether Diff finds nothing.
func Equal(a, b record.Value) bool {
	return len(Diff(a, b)) == 0
}

type walker struct {
	entries []Entry
}

func (w *walker) add(e Entry) {
	w.entries = append(w.entries, e)
}

func (w *walker) walk(path Path, a, b record.Value) {
	if a == nil {
		a = record.Null{}
	}
	if b == nil {
		b = record.Null{}
	}

	if a.Kind() != b.Kind() {
		w.add(Entry{Path: path, Kind: TypeChanged, Old: a, New: b})
		return
	}

	switch av := a.(type) {
	case record.Null:
	case record.Bool:
		if av != b.(record.Bool) {
			w.add(Entry{Path: path, Kind: Changed, Old: a, New: b})
		}
	case record.Number:
		if !av.Equal(b.(record.Number)) {
			w.add(Entry{Path: path, Kind: Changed, Old: a, New: b})
		}
	case record.String:
		if av != b.(record.String) {
			w.add(Entry{Path: path, Kind: Changed, Old: a, New: b})
		}
	case record.List:
		w.list(path, av, b.(record.List))
	case *record.Record:
		w.record(path, av, b.(*record.Record))
	}
}

func (w *walker) record(path Path, a, b *record.Record) {
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok {
			w.add(Entry{Path: path.child(FieldStep(k)), Kind: FieldRemoved, Old: av})
			continue
		}
		w.walk(path.child(FieldStep(k)), av, bv)
	}

	for _, k := range b.Keys() {
		if a.Has(k) {
			continue
		}
		bv, _ := b.Get(k)
		w.add(Entry{Path: path.child(FieldStep(k)), Kind: FieldAdded, New: bv})
	}
}

func (w *walker) list(path Path, a, b record.List) {
	shorter := min(len(a), len(b))
	for i := 0; i < shorter; i++ {
		w.walk(path.child(IndexStep(i)), a[i], b[i])
	}

	switch {
	case len(b) > shorter:
		w.add(Entry{Path: path, Kind: ElementsAdded, Elements: b[shorter:], Offset: shorter})
	case len(a) > shorter:
		w.add(Entry{Path: path, Kind: ElementsRemoved, Elements: a[shorter:], Offset: shorter})
	}
}
