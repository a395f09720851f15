// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/setdiff/setdiff/internal/command"
	"github.com/setdiff/setdiff/internal/config"
	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/version"
)

var ctx = context.Background()

// boolFlags never consume the following argument.
var boolFlags = map[string]bool{
	"c": true, "color": true,
	"cache":       true,
	"pick":        true,
	"strict-keys": true,
	"summary":     true,
}

// repeatableFlags accumulate and are never deduplicated.
var repeatableFlags = map[string]bool{
	"x": true, "exclude": true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @set references and drops flags that a later
// occurrence overrides.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// processSetOnly replaces the first @name argument with the entries of the
// <command>.<name> list from the config file.
func processSetOnly(args []string) []string {
	idx := 2
	if len(args) <= idx {
		return args
	}

	for i, a := range args[idx:] {
		if !strings.HasPrefix(a, "@") {
			continue
		}
		pos := idx + i
		rest := append([]string{}, args[pos+1:]...)
		args = args[:pos]
		entries, err := config.GetStringSlice(args[1] + "." + a[1:])
		if err != nil {
			log.Warnf("no %s.%s set in config", args[1], a[1:])
		}
		return injectConfigSet(append(args, rest...), entries, pos)
	}
	return args
}

// injectConfigSet splits every entry on whitespace and inserts the fields
// at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags keeps only the last occurrence of every flag so a set
// from the config can be overridden on the command line.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		name  string
		parts []string
	}

	var tokens []token
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if a == "--" {
			tokens = append(tokens, token{parts: rest[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if k, _, ok := strings.Cut(name, "="); ok {
			tokens = append(tokens, token{name: k, parts: []string{a}})
			continue
		}
		if !boolFlags[name] && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			tokens = append(tokens, token{name: name, parts: []string{a, rest[i+1]}})
			i++
			continue
		}
		tokens = append(tokens, token{name: name, parts: []string{a}})
	}

	last := map[string]int{}
	for i, t := range tokens {
		if t.name != "" {
			last[t.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, t := range tokens {
		if t.name != "" && !repeatableFlags[t.name] && last[t.name] != i {
			continue
		}
		out = append(out, t.parts...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}
