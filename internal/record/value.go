// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"math/big"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Kind names the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// Value is one node of a decoded document. The concrete types are Null,
// Bool, Number, String, List and *Record; no other package implements it.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept as its literal text so that rendering shows
// exactly what the document said. Comparison is numeric, see Equal.
type Number string

// String is a JSON string.
type String string

// List is an ordered sequence of values.
type List []Value

// Record is an ordered mapping from field name to value. Field order is the
// order in which fields were first set.
type Record struct {
	fields *orderedmap.OrderedMap[string, Value]
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (List) Kind() Kind    { return KindList }
func (*Record) Kind() Kind { return KindRecord }

func (Null) sealed()    {}
func (Bool) sealed()    {}
func (Number) sealed()  {}
func (String) sealed()  {}
func (List) sealed()    {}
func (*Record) sealed() {}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.NewOrderedMap[string, Value]()}
}

// Field is a name/value pair used to build records in one call.
type Field struct {
	Name  string
	Value Value
}

// RecordOf builds a record from fields in the given order.
func RecordOf(fields ...Field) *Record {
	r := NewRecord()
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Set stores v under name. An existing field keeps its position and takes
// the new value.
func (r *Record) Set(name string, v Value) {
	if r.fields == nil {
		r.fields = orderedmap.NewOrderedMap[string, Value]()
	}
	r.fields.Set(name, v)
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(name)
}

// Has reports whether name is a field of r.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Keys returns the field names in order.
func (r *Record) Keys() []string {
	if r == nil || r.fields == nil {
		return nil
	}
	return r.fields.Keys()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Equal reports whether two numbers have the same numeric value. Literals
// that fail to parse, or whose exponent over- or underflows big.Float, fall
// back to text comparison.
func (n Number) Equal(o Number) bool {
	if n == o {
		return true
	}
	a, okA := n.float()
	b, okB := o.float()
	if !okA || !okB {
		return false
	}
	return a.Cmp(b) == 0
}

func (n Number) float() (*big.Float, bool) {
	f, _, err := big.ParseFloat(string(n), 10, 512, big.ToNearestEven)
	if err != nil || f.IsInf() {
		return nil, false
	}
	if f.Sign() == 0 && nonZeroMantissa(string(n)) {
		return nil, false
	}
	return f, true
}

// nonZeroMantissa reports whether the digits before any exponent include
// something other than 0.
func nonZeroMantissa(s string) bool {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, "123456789")
}

// Collection is one side of a comparison: the decoded top-level array.
type Collection []Value
