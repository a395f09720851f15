// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keyexpr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/record"
)

// Compile parses src as an HCL template and returns a key function. A record
// the template cannot be evaluated against is keyed by its JSON text instead,
// so key derivation never fails.
func Compile(src string) (reconcile.KeyFunc, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), "key", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid key template %q: %s", src, diags.Error())
	}

	funcs := buildFunctionMap()

	return func(v record.Value) string {
		key, err := evaluate(expr, funcs, v)
		if err != nil {
			log.Debugf("key template fallback: err=%v", err)
			return record.Text(v)
		}
		return key
	}, nil
}

// Eval evaluates src against a single value. It is meant for checking a
// template from the command line.
func Eval(src string, v record.Value) (string, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), "key", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid key template %q: %s", src, diags.Error())
	}
	return evaluate(expr, buildFunctionMap(), v)
}

func evaluate(expr hclsyntax.Expression, funcs map[string]function.Function, v record.Value) (string, error) {
	ctx := &hcl.EvalContext{
		Variables: buildVariableMap(v),
		Functions: funcs,
	}

	out, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", fmt.Errorf("evaluating key: %s", diags.Error())
	}
	if out.IsNull() || !out.IsKnown() {
		return "", fmt.Errorf("key evaluated to null")
	}

	s, err := convert.Convert(out, cty.String)
	if err != nil {
		return "", fmt.Errorf("key is not a string: %w", err)
	}
	return s.AsString(), nil
}

// buildVariableMap exposes the record as `record` and, when it is a record,
// each field under its own name.
func buildVariableMap(v record.Value) map[string]cty.Value {
	vars := map[string]cty.Value{
		"record": toCty(v),
	}

	if rec, ok := v.(*record.Record); ok {
		for _, k := range rec.Keys() {
			if k == "record" || !hclsyntax.ValidIdentifier(k) {
				continue
			}
			fv, _ := rec.Get(k)
			vars[k] = toCty(fv)
		}
	}

	return vars
}

// toCty converts a record value to its cty equivalent. Lists become tuples
// because elements need not share a type.
func toCty(v record.Value) cty.Value {
	switch t := v.(type) {
	case record.Bool:
		return cty.BoolVal(bool(t))
	case record.Number:
		n, err := cty.ParseNumberVal(string(t))
		if err != nil {
			return cty.StringVal(string(t))
		}
		return n
	case record.String:
		return cty.StringVal(string(t))
	case record.List:
		if len(t) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, len(t))
		for i, e := range t {
			vals[i] = toCty(e)
		}
		return cty.TupleVal(vals)
	case *record.Record:
		if t.Len() == 0 {
			return cty.EmptyObjectVal
		}
		vals := make(map[string]cty.Value, t.Len())
		for _, k := range t.Keys() {
			fv, _ := t.Get(k)
			vals[k] = toCty(fv)
		}
		return cty.ObjectVal(vals)
	}
	return cty.NullVal(cty.DynamicPseudoType)
}
