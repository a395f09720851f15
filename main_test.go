// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setdiff/setdiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"setdiff", "compare"},
			expected: []string{"setdiff", "compare"},
		},
		{
			name:     "no duplicates",
			args:     []string{"setdiff", "compare", "--output", "text", "--summary"},
			expected: []string{"setdiff", "compare", "--output", "text", "--summary"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"setdiff", "compare", "--output", "json", "--summary", "--output", "text"},
			expected: []string{"setdiff", "compare", "--summary", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag keeps following positional",
			args:     []string{"setdiff", "compare", "--summary", "Basic", "--summary"},
			expected: []string{"setdiff", "compare", "Basic", "--summary"},
		},
		{
			name:     "equals syntax",
			args:     []string{"setdiff", "compare", "--output=json", "--pick", "--output=text"},
			expected: []string{"setdiff", "compare", "--pick", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"setdiff", "compare", "--output=json", "--output", "text"},
			expected: []string{"setdiff", "compare", "--output", "text"},
		},
		{
			name:     "short flags",
			args:     []string{"setdiff", "compare", "-p", "2", "-p", "8"},
			expected: []string{"setdiff", "compare", "-p", "8"},
		},
		{
			name:     "exclude accumulates",
			args:     []string{"setdiff", "compare", "-x", "Tavern", "-x", "Hidden"},
			expected: []string{"setdiff", "compare", "-x", "Tavern", "-x", "Hidden"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"setdiff", "diff", "old.json", "new.json", "-o", "json", "-o", "yaml"},
			expected: []string{"setdiff", "diff", "old.json", "new.json", "-o", "yaml"},
		},
		{
			name:     "everything after -- untouched",
			args:     []string{"setdiff", "compare", "-o", "json", "--", "-o", "-o"},
			expected: []string{"setdiff", "compare", "-o", "json", "--", "-o", "-o"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		entries   []string
		expected  []string
	}{
		{
			name:      "empty entries returns args unchanged",
			args:      []string{"setdiff", "compare", "--summary"},
			insertIdx: 2,
			expected:  []string{"setdiff", "compare", "--summary"},
		},
		{
			name:      "single entry",
			args:      []string{"setdiff", "compare", "--summary"},
			insertIdx: 2,
			entries:   []string{"--pick"},
			expected:  []string{"setdiff", "compare", "--pick", "--summary"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"setdiff", "compare"},
			insertIdx: 2,
			entries:   []string{"--output yaml", "-p  4"},
			expected:  []string{"setdiff", "compare", "--output", "yaml", "-p", "4"},
		},
		{
			name:      "insert after positional",
			args:      []string{"setdiff", "compare", "Basic", "--summary"},
			insertIdx: 3,
			entries:   []string{"-x Tavern"},
			expected:  []string{"setdiff", "compare", "Basic", "-x", "Tavern", "--summary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.entries, tt.insertIdx))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "setdiff.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
compare:
  quick:
    - --summary
    - -p 8
`), 0o600))
	t.Setenv("SETDIFF_CFG_FILE", cfg)

	saved := config.Config
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = saved })

	got := processSetOnly([]string{"setdiff", "compare", "Basic", "@quick", "-o", "json"})
	assert.Equal(t, []string{"setdiff", "compare", "Basic", "--summary", "-p", "8", "-o", "json"}, got)

	got = processSetOnly([]string{"setdiff", "compare", "@missing"})
	assert.Equal(t, []string{"setdiff", "compare"}, got)

	got = processSetOnly([]string{"setdiff", "compare", "Basic"})
	assert.Equal(t, []string{"setdiff", "compare", "Basic"}, got)
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"setdiff", "--help"}, handleNakedCommand([]string{"setdiff"}))
	assert.Equal(t, []string{"setdiff", "list"}, handleNakedCommand([]string{"setdiff", "list"}))
}

func TestProcessCommandArgsSkipsCompletion(t *testing.T) {
	args := []string{"setdiff", "completion", "bash", "bash"}
	assert.Equal(t, args, processCommandArgs(args))
}
