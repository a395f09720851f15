// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Decode when the input is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Decode parses a JSON array into a Collection. Object fields keep their
// document order, which is what makes field-level output reproducible.
func Decode(data []byte) (Collection, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of records, got %s", describe(root))
	}

	c := Collection{}
	root.ForEach(func(_, v gjson.Result) bool {
		c = append(c, FromResult(v))
		return true
	})
	return c, nil
}

// DecodeValue parses any JSON document into a Value.
func DecodeValue(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return FromResult(gjson.ParseBytes(data)), nil
}

// FromResult converts a gjson result into a Value.
func FromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null{}
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return String(r.Str)
	}

	if r.IsArray() {
		l := List{}
		r.ForEach(func(_, v gjson.Result) bool {
			l = append(l, FromResult(v))
			return true
		})
		return l
	}

	if r.IsObject() {
		rec := NewRecord()
		r.ForEach(func(k, v gjson.Result) bool {
			rec.Set(k.Str, FromResult(v))
			return true
		})
		return rec
	}

	// A non-existent result only shows up for empty input, which ValidBytes
	// has already rejected.
	return Null{}
}

func describe(r gjson.Result) string {
	if r.IsObject() {
		return "object"
	}
	return r.Type.String()
}
