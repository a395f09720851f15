// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package runner drives a comparison across every set in a catalog. Each
// set's reference and candidate are fetched concurrently, decoded and
// reconciled. A set missing on the reference is skipped, and a set that
// fails is recorded without stopping the run.
package runner
