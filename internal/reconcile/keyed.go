// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"github.com/setdiff/setdiff/internal/record"
)

// KeyFunc derives the identity of a record. It must not fail; malformed
// records still get some key.
type KeyFunc func(record.Value) string

// NameID keys a record as `name (id)`, the identity HearthstoneJSON cards
// are matched by. Missing fields render as "undefined".
func NameID(v record.Value) string {
	return Field("name")(v) + " (" + Field("id")(v) + ")"
}

// Field returns a KeyFunc that uses the value at path (see record.Lookup).
func Field(path string) KeyFunc {
	return func(v record.Value) string {
		return record.Format(record.Lookup(v, path))
	}
}

// Keyed maps keys to records. Order holds each key once, in the order it was
// first seen; a later record with the same key replaces the earlier one.
type Keyed struct {
	Order      []string
	Records    map[string]record.Value
	Duplicates []string
}

// NewKeyed builds the keyed mapping of c.
func NewKeyed(c record.Collection, keyFn KeyFunc) Keyed {
	k := Keyed{Records: make(map[string]record.Value, len(c))}
	seenDup := map[string]bool{}

	for _, v := range c {
		key := keyFn(v)
		if _, ok := k.Records[key]; ok {
			if !seenDup[key] {
				seenDup[key] = true
				k.Duplicates = append(k.Duplicates, key)
			}
		} else {
			k.Order = append(k.Order, key)
		}
		k.Records[key] = v
	}

	return k
}

// Has reports whether key is present.
func (k Keyed) Has(key string) bool {
	_, ok := k.Records[key]
	return ok
}

// Partition splits the keys of two mappings. added is in newKeyed order,
// removed and matched are in oldKeyed order. Every key lands in exactly one
// of the three.
func Partition(oldKeyed, newKeyed Keyed) (added, removed, matched []string) {
	for _, key := range oldKeyed.Order {
		if newKeyed.Has(key) {
			matched = append(matched, key)
		} else {
			removed = append(removed, key)
		}
	}
	for _, key := range newKeyed.Order {
		if !oldKeyed.Has(key) {
			added = append(added, key)
		}
	}
	return
}
