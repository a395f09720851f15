// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Marshal renders v as compact JSON, keeping record field order.
func Marshal(v Value) []byte {
	var buf bytes.Buffer
	encode(&buf, v)
	return buf.Bytes()
}

// Text renders v as compact JSON text.
func Text(v Value) string {
	return string(Marshal(v))
}

// Quote renders s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	var buf bytes.Buffer
	quote(&buf, s)
	return buf.String()
}

// MarshalJSON lets records take part in encoding/json output.
func (r *Record) MarshalJSON() ([]byte, error) {
	return Marshal(r), nil
}

// Interface converts v to the plain Go shapes encoding/json and yaml produce
// (nil, bool, float64, string, []any, map[string]any). Field order is lost
// and very large integers may lose precision.
func Interface(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return string(t)
		}
		return f
	case String:
		return string(t)
	case List:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Interface(e)
		}
		return out
	case *Record:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			fv, _ := t.Get(k)
			out[k] = Interface(fv)
		}
		return out
	}
	return nil
}

func encode(buf *bytes.Buffer, v Value) {
	switch t := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(string(t))
	case String:
		quote(buf, string(t))
	case List:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			encode(buf, e)
		}
		buf.WriteByte(']')
	case *Record:
		buf.WriteByte('{')
		for i, k := range t.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			quote(buf, k)
			buf.WriteByte(':')
			fv, _ := t.Get(k)
			encode(buf, fv)
		}
		buf.WriteByte('}')
	}
}

func quote(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
}
