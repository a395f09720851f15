// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows a collection to the records matching --filter
// expressions such as "collectible", "type=MINION" or "cost>3" before the
// collections are reconciled.
package filters
