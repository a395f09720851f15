// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package reconcile matches the records of two collections by a derived key
// and aggregates the added, removed and changed keys into a Report.
package reconcile
