// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package keyexpr compiles HCL templates such as `${name} (${id})` into
// record key functions. Top-level record fields are template variables and
// the whole record is available as `record`. The go-cty standard library
// functions plus try() and can() are available.
package keyexpr
