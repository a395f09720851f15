// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cacheutil keeps fetched reference blobs on disk so repeated
// comparisons against the same remote source do not refetch them.
package cacheutil
