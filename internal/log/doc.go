// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log wraps apex/log with the handler and level setup setdiff uses.
// Logs go to stderr so that reports on stdout stay clean.
package log
