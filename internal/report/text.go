// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/setdiff/setdiff/internal/differ"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/record"
)

const indentUnit = "  "

// palette holds the styles used for text output. The zero palette renders
// plain text.
type palette struct {
	enabled bool
	title   lipgloss.Style
	key     lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{
		enabled: true,
		title:   lipgloss.NewStyle().Bold(true),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return s.Render(text)
}

// Text writes rep in the classic layout: the key changes first, then each
// changed key as a JSON-quoted heading followed by its differences. An empty
// report writes nothing.
func Text(w io.Writer, rep reconcile.Report, opts Options) error {
	if rep.Empty() {
		return nil
	}

	pal := newPalette(opts.Color)
	bw := bufio.NewWriter(w)

	if opts.Title != "" {
		fmt.Fprintln(bw, pal.render(pal.title, opts.Title+" :"))
	}

	if rep.KeysChanged() {
		fmt.Fprintln(bw, "Keys Changed :")
		for _, k := range rep.Added {
			fmt.Fprintln(bw, indentUnit+pal.render(pal.added, "added : "+record.Quote(k)))
		}
		for _, k := range rep.Removed {
			fmt.Fprintln(bw, indentUnit+pal.render(pal.removed, "removed : "+record.Quote(k)))
		}
	}

	for _, c := range rep.Changes {
		fmt.Fprintln(bw, pal.render(pal.key, record.Quote(c.Key))+" :")
		writeEntries(bw, c.Entries, pal)
	}

	return bw.Flush()
}

// writeEntries prints entries as an indented tree. Entries arrive in walk
// order, so consecutive entries share container headings.
func writeEntries(w io.Writer, entries []differ.Entry, pal palette) {
	var open differ.Path
	for _, e := range entries {
		// Trailing elements are listed inside their list's heading.
		parent := e.Path
		if len(parent) > 0 && !elementsKind(e.Kind) {
			parent = parent[:len(parent)-1]
		}

		shared := 0
		for shared < len(open) && shared < len(parent) && open[shared] == parent[shared] {
			shared++
		}
		for i := shared; i < len(parent); i++ {
			fmt.Fprintln(w, indent(i+1)+heading(parent[i]))
		}
		open = parent

		fmt.Fprintln(w, indent(len(parent)+1)+line(e, pal))
	}
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func heading(s differ.Step) string {
	if s.IsIndex {
		return "index " + strconv.Itoa(s.Index) + " :"
	}
	return s.Field + " :"
}

func elementsKind(k differ.Kind) bool {
	return k == differ.ElementsAdded || k == differ.ElementsRemoved
}

// line renders the leaf of an entry. label is empty for the root and for
// trailing elements, "name : " for a field and "index N " for a list
// position.
func line(e differ.Entry, pal palette) string {
	label := ""
	indexed := false
	if n := len(e.Path); n > 0 && !elementsKind(e.Kind) {
		last := e.Path[n-1]
		if last.IsIndex {
			label = "index " + strconv.Itoa(last.Index) + " "
			indexed = true
		} else {
			label = last.Field + " : "
		}
	}

	switch e.Kind {
	case differ.Changed:
		if indexed {
			return label + "changed: " + arrow(e, pal)
		}
		return label + arrow(e, pal)
	case differ.TypeChanged:
		return label + "type changed: " + arrow(e, pal) +
			" (" + e.Old.Kind().String() + " -> " + e.New.Kind().String() + ")"
	case differ.FieldAdded:
		return label + pal.render(pal.added, "field added: "+record.Text(e.New))
	case differ.FieldRemoved:
		return label + pal.render(pal.removed, "field removed: "+record.Text(e.Old))
	case differ.ElementsAdded:
		return label + pal.render(pal.added, "elements added: "+record.Text(record.List(e.Elements)))
	case differ.ElementsRemoved:
		return label + pal.render(pal.removed, "elements removed: "+record.Text(record.List(e.Elements)))
	default:
		return label + e.Kind.String()
	}
}

func arrow(e differ.Entry, pal palette) string {
	return pal.render(pal.removed, record.Text(e.Old)) + " -> " + pal.render(pal.added, record.Text(e.New))
}
