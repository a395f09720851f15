// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"github.com/setdiff/setdiff/internal/differ"
	"github.com/setdiff/setdiff/internal/record"
)

// Change holds the differences found for one matched key, along with the
// two records they were found between.
type Change struct {
	Key     string
	Old     record.Value
	New     record.Value
	Entries []differ.Entry
}

// Report is the outcome of one comparison. The zero Report means "no
// differences".
type Report struct {
	Added   []string
	Removed []string
	Changes []Change
	// Duplicates lists keys that more than one record produced on either
	// side. Only the last such record took part in the comparison.
	Duplicates []string
}

// Empty reports whether the collections were found equivalent. Duplicates
// alone do not make a report non-empty.
func (r Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changes) == 0
}

// KeysChanged reports whether the key sets differ.
func (r Report) KeysChanged() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Options tune Reconcile.
type Options struct {
	// Diff replaces differ.Diff. Tests use it to observe invocations.
	Diff func(oldValue, newValue record.Value) []differ.Entry
}

// Reconcile keys both collections, works out the added and removed keys and
// diffs every matched pair exactly once, in the order keys appear in
// oldCollection. Keys on one side only are never diffed.
func Reconcile(oldCollection, newCollection record.Collection, keyFn KeyFunc) Report {
	return ReconcileWith(oldCollection, newCollection, keyFn, Options{})
}

// ReconcileWith is Reconcile with options.
func ReconcileWith(oldCollection, newCollection record.Collection, keyFn KeyFunc, opts Options) Report {
	if keyFn == nil {
		keyFn = NameID
	}
	diff := opts.Diff
	if diff == nil {
		diff = differ.Diff
	}

	oldKeyed := NewKeyed(oldCollection, keyFn)
	newKeyed := NewKeyed(newCollection, keyFn)

	added, removed, matched := Partition(oldKeyed, newKeyed)
	rep := Report{
		Added:      added,
		Removed:    removed,
		Duplicates: mergeDuplicates(oldKeyed.Duplicates, newKeyed.Duplicates),
	}

	for _, key := range matched {
		oldValue, newValue := oldKeyed.Records[key], newKeyed.Records[key]
		if entries := diff(oldValue, newValue); len(entries) > 0 {
			rep.Changes = append(rep.Changes, Change{Key: key, Old: oldValue, New: newValue, Entries: entries})
		}
	}

	return rep
}

func mergeDuplicates(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, k := range list {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}
