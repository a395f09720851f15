// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/setdiff/setdiff/internal/differ"
	"github.com/setdiff/setdiff/internal/record"
	"github.com/setdiff/setdiff/internal/runner"
)

// Document is the machine-readable form of one set's result.
type Document struct {
	Name       string           `json:"name" yaml:"name"`
	Status     runner.Status    `json:"status" yaml:"status"`
	Error      string           `json:"error,omitempty" yaml:"error,omitempty"`
	Added      []string         `json:"added,omitempty" yaml:"added,omitempty"`
	Removed    []string         `json:"removed,omitempty" yaml:"removed,omitempty"`
	Duplicates []string         `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	Changes    []ChangeDocument `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// ChangeDocument lists the differences of one matched key.
type ChangeDocument struct {
	Key     string          `json:"key" yaml:"key"`
	Entries []EntryDocument `json:"entries" yaml:"entries"`
}

// EntryDocument is one differ.Entry.
type EntryDocument struct {
	Path     string  `json:"path" yaml:"path"`
	Kind     string  `json:"kind" yaml:"kind"`
	Old      *Value  `json:"old,omitempty" yaml:"old,omitempty"`
	New      *Value  `json:"new,omitempty" yaml:"new,omitempty"`
	Elements []Value `json:"elements,omitempty" yaml:"elements,omitempty"`
	Offset   *int    `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Value wraps a record.Value so it encodes with its field order intact.
type Value struct {
	record.Value
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return record.Marshal(v.Value), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return yamlNode(v.Value), nil
}

// NewDocument converts a runner result.
func NewDocument(res runner.Result) Document {
	doc := Document{
		Name:       res.Name,
		Status:     res.Status,
		Added:      res.Report.Added,
		Removed:    res.Report.Removed,
		Duplicates: res.Report.Duplicates,
	}
	if res.Err != nil {
		doc.Error = res.Err.Error()
	}

	for _, c := range res.Report.Changes {
		cd := ChangeDocument{Key: c.Key}
		for _, e := range c.Entries {
			cd.Entries = append(cd.Entries, entryDocument(e))
		}
		doc.Changes = append(doc.Changes, cd)
	}

	return doc
}

func entryDocument(e differ.Entry) EntryDocument {
	ed := EntryDocument{Path: e.Path.String(), Kind: e.Kind.String()}
	if ed.Path == "" {
		ed.Path = "."
	}

	switch e.Kind {
	case differ.Changed, differ.TypeChanged:
		ed.Old, ed.New = &Value{e.Old}, &Value{e.New}
	case differ.FieldRemoved:
		ed.Old = &Value{e.Old}
	case differ.FieldAdded:
		ed.New = &Value{e.New}
	case differ.ElementsAdded, differ.ElementsRemoved:
		offset := e.Offset
		ed.Offset = &offset
		for _, el := range e.Elements {
			ed.Elements = append(ed.Elements, Value{el})
		}
	}

	return ed
}

// yamlNode builds a node tree that keeps record field order and quotes
// strings that would otherwise read back as another type.
func yamlNode(v record.Value) *yaml.Node {
	switch t := v.(type) {
	case nil, record.Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case record.Bool:
		val := "false"
		if t {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case record.Number:
		tag := "!!int"
		if strings.ContainsAny(string(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}
	case record.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	case record.List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range t {
			n.Content = append(n.Content, yamlNode(el))
		}
		return n
	case *record.Record:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range t.Keys() {
			fv, _ := t.Get(k)
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				yamlNode(fv))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: record.Text(v)}
	}
}
