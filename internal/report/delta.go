// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/record"
)

// Delta writes rep with every changed record pair shown as an annotated
// JSON delta. Pairs that are not both records fall back to the text layout.
func Delta(w io.Writer, rep reconcile.Report, opts Options) error {
	if rep.Empty() {
		return nil
	}

	pal := newPalette(opts.Color)
	bw := bufio.NewWriter(w)

	keysOnly := rep
	keysOnly.Changes = nil
	if err := Text(bw, keysOnly, opts); err != nil {
		return err
	}
	if !rep.KeysChanged() && opts.Title != "" {
		fmt.Fprintln(bw, pal.render(pal.title, opts.Title+" :"))
	}

	differ := gojsondiff.New()
	for _, c := range rep.Changes {
		fmt.Fprintln(bw, pal.render(pal.key, record.Quote(c.Key))+" :")

		left, right, ok := objects(c.Old, c.New)
		if !ok {
			writeEntries(bw, c.Entries, pal)
			continue
		}

		delta := differ.CompareObjects(left, right)
		if !delta.Modified() {
			// Numerically equal literals such as 1.0 and 1 differ only in text.
			writeEntries(bw, c.Entries, pal)
			continue
		}

		f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       opts.Color,
		})
		out, err := f.Format(delta)
		if err != nil {
			return fmt.Errorf("failed to format delta for %s: %w", c.Key, err)
		}
		fmt.Fprint(bw, out)
	}

	return bw.Flush()
}

// objects converts two records to the generic maps gojsondiff works on.
func objects(a, b record.Value) (map[string]interface{}, map[string]interface{}, bool) {
	if a == nil || b == nil || a.Kind() != record.KindRecord || b.Kind() != record.KindRecord {
		return nil, nil, false
	}

	var left, right map[string]interface{}
	if err := json.Unmarshal(record.Marshal(a), &left); err != nil {
		return nil, nil, false
	}
	if err := json.Unmarshal(record.Marshal(b), &right); err != nil {
		return nil, nil, false
	}
	return left, right, true
}
