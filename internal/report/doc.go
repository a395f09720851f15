// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders comparison results.
//
// Text output keeps the classic layout:
//
//	Keys Changed :
//	  added : "B (2)"
//	  removed : "A (1)"
//	"A (1)" :
//	  cost : 2 -> 3
//
// JSON and YAML carry the same information as structured documents, delta
// shows each changed pair as an annotated JSON delta and Summary prints a
// one-line-per-set table.
package report
