// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/record"
)

// filterRegex splits an expression into key, operator and target. Operators
// are one of = ^ ~ < > @ or /, optionally prefixed with '!'. Examples:
// "collectible" (key only), "type=MINION", "cost>3", "mechanics@TAUNT",
// "name!/^Dummy".
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression. A filter without an
// operand only requires the key to be present.
type Filter struct {
	Key     string `yaml:"key" json:"key"`
	Negate  bool   `yaml:"negate" json:"negate"`
	Operand string `yaml:"operand" json:"operand"`
	Value   string `yaml:"value" json:"value"`

	re *regexp.Regexp
}

// Parse turns a --filter value into filters. Expressions are comma
// separated unless SETDIFF_FILTER_DELIM names another delimiter.
func Parse(spec string) ([]Filter, error) {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters, nil
	}

	delim := ","
	if d, ok := os.LookupEnv("SETDIFF_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			return nil, fmt.Errorf("invalid filter: %s", expr)
		}

		f := Filter{
			Key:     strings.TrimSpace(parts[1]),
			Operand: parts[2],
			Value:   parts[3],
		}
		if f.Key == "" {
			return nil, fmt.Errorf("invalid filter: empty key in %s", expr)
		}
		if f.Operand == "" && f.Value != "" {
			return nil, fmt.Errorf("invalid filter: %s", expr)
		}

		f.Negate = strings.HasPrefix(f.Operand, "!")
		f.Operand = strings.TrimPrefix(f.Operand, "!")

		if f.Operand == "/" {
			re, err := regexp.Compile(f.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid filter regex %q: %w", f.Value, err)
			}
			f.re = re
		}

		filters = append(filters, f)
	}

	return filters, nil
}

// Apply returns the records of c that match every filter. The result
// shares elements with c.
func Apply(c record.Collection, filters []Filter) record.Collection {
	if len(filters) == 0 {
		return c
	}

	out := make(record.Collection, 0, len(c))
	for _, v := range c {
		if Match(v, filters) {
			out = append(out, v)
		}
	}
	log.Debugf("filters kept %d of %d records", len(out), len(c))
	return out
}

// Match reports whether v passes every filter.
func Match(v record.Value, filters []Filter) bool {
	for _, f := range filters {
		if !f.match(v) {
			return false
		}
	}
	return true
}

func (f Filter) match(v record.Value) bool {
	value, ok := record.Lookup(v, f.Key)
	if f.Operand == "" {
		return ok != f.Negate
	}
	if !ok {
		return f.Negate
	}

	switch val := value.(type) {
	case record.String:
		return f.checkString(string(val))
	case record.Bool:
		return f.checkString(strconv.FormatBool(bool(val)))
	case record.Number:
		if n, err := strconv.ParseFloat(string(val), 64); err == nil && f.Operand != "@" && f.Operand != "/" && f.Operand != "^" {
			return f.checkNumeric(n)
		}
		return f.checkString(string(val))
	case record.List, *record.Record:
		if f.Operand == "@" {
			return f.checkContains(value)
		}
		return f.checkString(record.Text(value))
	default:
		return f.checkString("null")
	}
}

// checkContains is membership for lists and field presence for records.
func (f Filter) checkContains(value record.Value) bool {
	switch val := value.(type) {
	case record.List:
		for _, item := range val {
			if record.Format(item, true) == f.Value {
				return !f.Negate
			}
		}
		return f.Negate
	case *record.Record:
		return val.Has(f.Value) != f.Negate
	default:
		return false
	}
}

// checkNumeric supports =, > and <; != is Negate with "=".
func (f Filter) checkNumeric(value float64) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil {
		return f.checkString(strconv.FormatFloat(value, 'f', -1, 64))
	}

	switch f.Operand {
	case "=":
		return (value == tgt) == !f.Negate
	case ">":
		return (value > tgt) == !f.Negate
	case "<":
		return (value < tgt) == !f.Negate
	case "~":
		return (value == tgt) == !f.Negate
	default:
		return false
	}
}

func (f Filter) checkString(value string) bool {
	switch f.Operand {
	case "=":
		return value == f.Value == !f.Negate
	case "~":
		return strings.EqualFold(value, f.Value) == !f.Negate
	case "^":
		return strings.HasPrefix(value, f.Value) == !f.Negate
	case ">":
		return value > f.Value == !f.Negate
	case "<":
		return value < f.Value == !f.Negate
	case "@":
		return strings.Contains(value, f.Value) == !f.Negate
	case "/":
		re := f.re
		if re == nil {
			var err error
			if re, err = regexp.Compile(f.Value); err != nil {
				log.Errorf("invalid regex: %s", f.Value)
				return false
			}
		}
		return re.MatchString(value) == !f.Negate
	default:
		return false
	}
}
