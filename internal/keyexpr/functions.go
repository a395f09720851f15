// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keyexpr

import (
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// buildFunctionMap returns the functions a key template may call. Only
// functions that make sense for building a string key are included.
func buildFunctionMap() map[string]function.Function {
	return map[string]function.Function{
		// Strings.
		"chomp":      stdlib.ChompFunc,
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"substr":     stdlib.SubstrFunc,
		"title":      stdlib.TitleFunc,
		"trim":       stdlib.TrimFunc,
		"trimprefix": stdlib.TrimPrefixFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"trimsuffix": stdlib.TrimSuffixFunc,
		"upper":      stdlib.UpperFunc,

		// Numbers.
		"abs":      stdlib.AbsoluteFunc,
		"floor":    stdlib.FloorFunc,
		"parseint": stdlib.ParseIntFunc,

		// Collections.
		"coalesce": stdlib.CoalesceFunc,
		"element":  stdlib.ElementFunc,
		"length":   stdlib.LengthFunc,
		"lookup":   stdlib.LookupFunc,
		"sort":     stdlib.SortFunc,

		// Data.
		"jsonencode": stdlib.JSONEncodeFunc,
		"regex":      stdlib.RegexFunc,

		"try": tryfunc.TryFunc,
		"can": tryfunc.CanFunc,
	}
}
