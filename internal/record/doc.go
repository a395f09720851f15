// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package record holds the value model shared by the differ and the
// reconciler: a sealed variant over null, bool, number, string, list and
// ordered record values, plus JSON decoding that keeps document order.
package record
