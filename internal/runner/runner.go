// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/setdiff/setdiff/internal/filters"
	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/record"
	"github.com/setdiff/setdiff/internal/source"
)

// Status is the outcome of comparing one set.
type Status int

const (
	Identical Status = iota
	Changed
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Identical:
		return "identical"
	case Changed:
		return "changed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText renders the status by name in JSON and YAML output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one set.
type Result struct {
	Name          string
	Status        Status
	Report        reconcile.Report
	Err           error
	ReferenceSize int
	CandidateSize int
}

// DefaultExclude names the sets never compared, whatever Exclude holds.
// AllSets aggregates every other set.
var DefaultExclude = []string{"AllSets"}

// Runner compares every set a Catalog names.
type Runner struct {
	Catalog   source.Catalog
	Reference source.Reference
	Candidate source.Candidate
	Key       reconcile.KeyFunc
	// Exclude names sets skipped in addition to DefaultExclude.
	Exclude []string
	// Parallel bounds how many sets are compared at once. Values below 1
	// mean 1.
	Parallel int
	// StrictKeys fails a set when either side has duplicate keys.
	StrictKeys bool
	// Filters drop records from both sides before they are keyed.
	Filters []filters.Filter
}

// Names returns the catalog's set names minus excluded ones.
func (r *Runner) Names(ctx context.Context) ([]string, error) {
	names, err := r.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate sets: %w", err)
	}
	return r.filter(names), nil
}

func (r *Runner) filter(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if slices.Contains(DefaultExclude, name) || slices.Contains(r.Exclude, name) {
			log.Debugf("excluded %s", name)
			continue
		}
		out = append(out, name)
	}
	return out
}

// Run compares names, or the whole catalog when names is empty, and calls
// emit once per set in that order. A set that fails does not stop the run;
// only a failure to enumerate the catalog is returned.
func (r *Runner) Run(ctx context.Context, names []string, emit func(Result)) error {
	if len(names) == 0 {
		var err error
		if names, err = r.Names(ctx); err != nil {
			return err
		}
	} else {
		names = r.filter(names)
	}

	parallel := max(r.Parallel, 1)
	results := make([]Result, len(names))
	ready := make([]chan struct{}, len(names))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	var g errgroup.Group
	g.SetLimit(parallel)
	go func() {
		for i, name := range names {
			g.Go(func() error {
				results[i] = r.Compare(ctx, name)
				close(ready[i])
				return nil
			})
		}
	}()

	for i := range names {
		<-ready[i]
		emit(results[i])
	}
	return g.Wait()
}

// Compare fetches and compares one set. The reference and candidate are
// retrieved concurrently and both run to completion, so a missing reference
// is seen even when the candidate read fails first.
func (r *Runner) Compare(ctx context.Context, name string) Result {
	log.Infof("comparing %s", name)

	var refData, candData []byte
	refMissing := false

	var g errgroup.Group
	g.Go(func() error {
		data, err := r.Reference.Fetch(ctx, name)
		if errors.Is(err, source.ErrNotFound) {
			refMissing = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("reference: %w", err)
		}
		refData = data
		return nil
	})
	g.Go(func() error {
		data, err := r.Candidate.Read(ctx, name)
		if err != nil {
			return fmt.Errorf("candidate: %w", err)
		}
		candData = data
		return nil
	})
	err := g.Wait()

	if refMissing {
		log.Infof("skipping %s: missing on reference", name)
		return Result{Name: name, Status: Skipped, CandidateSize: len(candData)}
	}
	if err != nil {
		log.WithError(err).Errorf("%s failed", name)
		return Result{Name: name, Status: Failed, Err: err}
	}

	return r.CompareBytes(name, refData, candData)
}

// CompareBytes decodes and reconciles an already retrieved pair.
func (r *Runner) CompareBytes(name string, refData, candData []byte) Result {
	res := Result{Name: name, ReferenceSize: len(refData), CandidateSize: len(candData)}
	log.Debugf("%s: reference %s, candidate %s", name,
		humanize.Bytes(uint64(len(refData))), humanize.Bytes(uint64(len(candData))))

	oldCollection, err := record.Decode(refData)
	if err != nil {
		return r.fail(res, fmt.Errorf("reference: %w", err))
	}
	newCollection, err := record.Decode(candData)
	if err != nil {
		return r.fail(res, fmt.Errorf("candidate: %w", err))
	}

	if len(r.Filters) > 0 {
		oldCollection = filters.Apply(oldCollection, r.Filters)
		newCollection = filters.Apply(newCollection, r.Filters)
	}

	res.Report = reconcile.Reconcile(oldCollection, newCollection, r.Key)
	if dups := res.Report.Duplicates; len(dups) > 0 {
		if r.StrictKeys {
			return r.fail(res, fmt.Errorf("duplicate keys: %s", strings.Join(quoteAll(dups), ", ")))
		}
		log.Warnf("%s: %d duplicate key(s), last record wins: %s", name, len(dups), strings.Join(quoteAll(dups), ", "))
	}

	res.Status = Identical
	if !res.Report.Empty() {
		res.Status = Changed
	}
	return res
}

func (r *Runner) fail(res Result, err error) Result {
	log.WithError(err).Errorf("%s failed", res.Name)
	res.Status = Failed
	res.Err = err
	return res
}

func quoteAll(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = record.Quote(k)
	}
	return out
}
