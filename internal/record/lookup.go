// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"regexp"
	"strconv"
	"strings"
)

var segmentRe = regexp.MustCompile(`^([^.\[\]]+)(\[(\d+)\])?$`)

// Lookup navigates v with a dotted path. A segment may carry an index, as in
// "mechanics[0]" or "entourage[2].id". It returns false when any segment is
// missing, malformed or applied to the wrong kind of value.
func Lookup(v Value, path string) (Value, bool) {
	if path == "" {
		return v, v != nil
	}

	current := v
	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return nil, false
		}

		rec, ok := current.(*Record)
		if !ok {
			return nil, false
		}
		current, ok = rec.Get(matches[1])
		if !ok {
			return nil, false
		}

		if matches[3] == "" {
			continue
		}
		index, err := strconv.Atoi(matches[3])
		if err != nil {
			return nil, false
		}
		list, ok := current.(List)
		if !ok || index >= len(list) {
			return nil, false
		}
		current = list[index]
	}

	return current, true
}

// Format renders a looked-up value the way string concatenation shows it:
// strings bare, missing values as "undefined", anything else as JSON.
func Format(v Value, ok bool) string {
	if !ok || v == nil {
		return "undefined"
	}
	if s, isString := v.(String); isString {
		return string(s)
	}
	return Text(v)
}
