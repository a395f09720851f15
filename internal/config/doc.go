// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for setdiff's user
// configuration. The configuration is a YAML document named setdiff.yaml in
// the user's configuration directory, or wherever SETDIFF_CFG_FILE points.
//
// Keys may be namespaced by command, e.g. compare.reference, with the bare
// key (reference) as the fallback.
package config
