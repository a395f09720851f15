// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setdiff/setdiff/internal/differ"
	"github.com/setdiff/setdiff/internal/filters"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/source"
)

type fakeCatalog struct {
	names []string
	err   error
}

func (f fakeCatalog) List(context.Context) ([]string, error) { return f.names, f.err }

// fakeStore serves blobs by name. Missing names are ErrNotFound, or a plain
// error when strict is set.
type fakeStore struct {
	blobs  map[string]string
	strict bool
	delay  map[string]time.Duration

	mu    sync.Mutex
	calls []string
}

func (f *fakeStore) get(ctx context.Context, name string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()

	if d, ok := f.delay[name]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	b, ok := f.blobs[name]
	if !ok {
		if f.strict {
			return nil, fmt.Errorf("open %s: no such file", name)
		}
		return nil, fmt.Errorf("%s: %w", name, source.ErrNotFound)
	}
	return []byte(b), nil
}

func (f *fakeStore) Fetch(ctx context.Context, name string) ([]byte, error) { return f.get(ctx, name) }
func (f *fakeStore) Read(ctx context.Context, name string) ([]byte, error)  { return f.get(ctx, name) }
func (f *fakeStore) String() string                                         { return "fake" }

func newRunner(names []string, ref, cand map[string]string) (*Runner, *fakeStore, *fakeStore) {
	refStore := &fakeStore{blobs: ref}
	candStore := &fakeStore{blobs: cand, strict: true}
	return &Runner{
		Catalog:   fakeCatalog{names: names},
		Reference: refStore,
		Candidate: candStore,
	}, refStore, candStore
}

func collect(t *testing.T, r *Runner, names ...string) []Result {
	t.Helper()
	var out []Result
	require.NoError(t, r.Run(context.Background(), names, func(res Result) {
		out = append(out, res)
	}))
	return out
}

func TestRun_Statuses(t *testing.T) {
	r, _, _ := newRunner(
		[]string{"AllSets", "CORE", "GVG", "NAXX", "TGT", "BRM"},
		map[string]string{
			"CORE": `[{"name":"A","id":1,"cost":2}]`,
			"GVG":  `[{"name":"A","id":1,"cost":2}]`,
			"TGT":  `[{"name":"A","id":1}]`,
			"BRM":  `{"not":"an array"}`,
		},
		map[string]string{
			"CORE": `[{"name":"A","id":1,"cost":3}]`,
			"GVG":  `[{"name":"A","id":1,"cost":2}]`,
			"NAXX": `[]`,
			"BRM":  `[]`,
		},
	)

	results := collect(t, r)
	require.Len(t, results, 5)

	got := map[string]Status{}
	var order []string
	for _, res := range results {
		got[res.Name] = res.Status
		order = append(order, res.Name)
	}
	assert.Equal(t, []string{"CORE", "GVG", "NAXX", "TGT", "BRM"}, order)
	assert.Equal(t, Changed, got["CORE"])
	assert.Equal(t, Identical, got["GVG"])
	assert.Equal(t, Skipped, got["NAXX"])
	assert.Equal(t, Failed, got["TGT"])
	assert.Equal(t, Failed, got["BRM"])

	core := results[0]
	require.Len(t, core.Report.Changes, 1)
	assert.Equal(t, "A (1)", core.Report.Changes[0].Key)
	assert.Equal(t, differ.Changed, core.Report.Changes[0].Entries[0].Kind)
	assert.Positive(t, core.ReferenceSize)
	assert.Positive(t, core.CandidateSize)

	assert.ErrorContains(t, results[3].Err, "candidate")
	assert.ErrorContains(t, results[4].Err, "reference")
}

// A set missing on the reference is skipped and never decoded or diffed,
// and the sets after it still run.
func TestRun_MissingReferenceSkips(t *testing.T) {
	r, _, _ := newRunner(
		[]string{"NEW", "CORE"},
		map[string]string{"CORE": `[{"name":"A","id":1}]`},
		map[string]string{"NEW": `[{"name":"Z","id":9}]`, "CORE": `[{"name":"A","id":1}]`},
	)

	results := collect(t, r)
	require.Len(t, results, 2)
	assert.Equal(t, Skipped, results[0].Status)
	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].Report.Empty())
	assert.Equal(t, Identical, results[1].Status)
}

func TestRun_ExplicitNamesAreFiltered(t *testing.T) {
	r, refStore, _ := newRunner(nil,
		map[string]string{"CORE": `[]`, "AllSets": `[]`},
		map[string]string{"CORE": `[]`, "AllSets": `[]`},
	)

	results := collect(t, r, "AllSets", "CORE")
	require.Len(t, results, 1)
	assert.Equal(t, "CORE", results[0].Name)
	assert.Equal(t, []string{"CORE"}, refStore.calls)
}

func TestRun_ExcludeAddsToDefault(t *testing.T) {
	r, _, _ := newRunner(
		[]string{"AllSets", "CORE", "NAXX"},
		map[string]string{"AllSets": `[]`, "CORE": `[]`, "NAXX": `[]`},
		map[string]string{"AllSets": `[]`, "CORE": `[]`, "NAXX": `[]`},
	)
	r.Exclude = []string{"NAXX"}

	names, err := r.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CORE"}, names)

	results := collect(t, r, "AllSets", "NAXX", "CORE")
	require.Len(t, results, 1)
	assert.Equal(t, "CORE", results[0].Name)
}

// A reference miss that arrives after the candidate read has already failed
// still skips the set.
func TestCompare_SlowMissingReferenceWinsOverCandidateError(t *testing.T) {
	r, refStore, _ := newRunner([]string{"Foo"}, map[string]string{}, map[string]string{})
	refStore.delay = map[string]time.Duration{"Foo": 20 * time.Millisecond}

	res := r.Compare(context.Background(), "Foo")
	assert.Equal(t, Skipped, res.Status)
	assert.NoError(t, res.Err)
}

func TestRun_EnumerationFailure(t *testing.T) {
	r := &Runner{Catalog: fakeCatalog{err: errors.New("permission denied")}}
	err := r.Run(context.Background(), nil, func(Result) { t.Fatal("emit called") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enumerate sets")
}

func TestRun_ParallelKeepsOrder(t *testing.T) {
	names := []string{"S1", "S2", "S3", "S4", "S5", "S6"}
	blobs := map[string]string{}
	for _, n := range names {
		blobs[n] = `[]`
	}
	r, refStore, _ := newRunner(names, blobs, blobs)
	r.Parallel = 3
	refStore.delay = map[string]time.Duration{"S1": 30 * time.Millisecond, "S2": 10 * time.Millisecond}

	var order []string
	require.NoError(t, r.Run(context.Background(), nil, func(res Result) {
		order = append(order, res.Name)
	}))
	assert.Equal(t, names, order)
}

func TestRun_ParallelBound(t *testing.T) {
	names := []string{"S1", "S2", "S3", "S4", "S5"}
	var inflight, peak atomic.Int32

	ref := &gatedStore{onEnter: func() {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inflight.Add(-1)
	}}
	r := &Runner{
		Catalog:   fakeCatalog{names: names},
		Reference: ref,
		Candidate: ref,
		Parallel:  2,
	}

	require.NoError(t, r.Run(context.Background(), nil, func(Result) {}))
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

type gatedStore struct {
	onEnter func()
}

func (g *gatedStore) Fetch(context.Context, string) ([]byte, error) { g.onEnter(); return []byte(`[]`), nil }
func (g *gatedStore) Read(context.Context, string) ([]byte, error)  { g.onEnter(); return []byte(`[]`), nil }
func (g *gatedStore) String() string                               { return "gated" }

func TestCompareBytes_Duplicates(t *testing.T) {
	oldData := []byte(`[{"name":"A","id":1,"v":1},{"name":"A","id":1,"v":2}]`)
	newData := []byte(`[{"name":"A","id":1,"v":2}]`)

	r := &Runner{}
	res := r.CompareBytes("DUP", oldData, newData)
	assert.Equal(t, Identical, res.Status)
	assert.Equal(t, []string{"A (1)"}, res.Report.Duplicates)

	r.StrictKeys = true
	res = r.CompareBytes("DUP", oldData, newData)
	assert.Equal(t, Failed, res.Status)
	assert.ErrorContains(t, res.Err, `duplicate keys: "A (1)"`)
}

func TestCompareBytes_CustomKey(t *testing.T) {
	r := &Runner{Key: reconcile.Field("id")}
	res := r.CompareBytes("X",
		[]byte(`[{"name":"A","id":1}]`),
		[]byte(`[{"name":"B","id":1}]`))

	assert.Equal(t, Changed, res.Status)
	require.Len(t, res.Report.Changes, 1)
	assert.Equal(t, "1", res.Report.Changes[0].Key)
	assert.Empty(t, res.Report.Added)
}

func TestCompareBytes_Filters(t *testing.T) {
	fs, err := filters.Parse("collectible")
	require.NoError(t, err)

	r := &Runner{Filters: fs}
	res := r.CompareBytes("X",
		[]byte(`[{"name":"A","id":1,"collectible":true},{"name":"T","id":9}]`),
		[]byte(`[{"name":"A","id":1,"collectible":true},{"name":"T","id":9,"cost":1},{"name":"U","id":10}]`))

	assert.Equal(t, Identical, res.Status)
	assert.True(t, res.Report.Empty())
}

func TestStatus_String(t *testing.T) {
	tests := map[Status]string{
		Identical:  "identical",
		Changed:    "changed",
		Skipped:    "skipped",
		Failed:     "failed",
		Status(42): "Status(42)",
	}
	for s, want := range tests {
		assert.Equal(t, want, s.String())
		b, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
}
