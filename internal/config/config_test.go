// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points SETDIFF_CFG_FILE at a testdata file, loads it and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv("SETDIFF_CFG_FILE", absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		assert.NotEmpty(t, Config.Source)
		assert.Equal(t, "./web/json", Config.Data["candidate"])
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		msg  string
	}{
		{name: "missing file", path: "/nonexistent/setdiff.yaml", msg: "config file not found"},
		{name: "directory", path: "testdata", msg: "points to a directory"},
		{name: "invalid yaml", path: filepath.Join("testdata", "invalid.yaml"), msg: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SETDIFF_CFG_FILE", tt.path)
			Config = Type{}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	withConfig(t, "empty.yaml", func(t *testing.T) {
		assert.NotEmpty(t, Config.Source)
		_, err := GetString("reference")
		assert.Error(t, err)
	})
}

func TestGetters(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		s, err := GetString("reference")
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v1/latest/enUS", s)

		n, err := GetInt("cache.clean")
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		n, err = GetInt("cache.timeout")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		b, err := GetBool("summary")
		require.NoError(t, err)
		assert.True(t, b)

		list, err := GetStringSlice("exclude")
		require.NoError(t, err)
		assert.Equal(t, []string{"AllSets", "AllSets.enUS"}, list)
	})
}

func TestGetters_Defaults(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		s, err := GetString("missing", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", s)

		n, err := GetInt("missing", 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, n)

		b, err := GetBool("missing", true)
		assert.NoError(t, err)
		assert.True(t, b)

		list, err := GetStringSlice("missing", []string{"x"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"x"}, list)

		_, err = GetString("missing")
		assert.Error(t, err)
	})
}

func TestGetters_WrongType(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		_, err := GetString("parallel")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetInt("reference")
		assert.ErrorContains(t, err, "not an int")

		_, err = GetBool("reference")
		assert.ErrorContains(t, err, "not a bool")

		_, err = GetStringSlice("bad_list")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetStringSlice("cache")
		assert.ErrorContains(t, err, "not a slice")
	})
}

func TestGetters_Namespace(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		Config.Namespace = "compare"

		s, err := GetString("reference")
		require.NoError(t, err)
		assert.Equal(t, "s3://api.hearthstonejson.com/v1/latest/enUS", s)

		n, err := GetInt("parallel")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		// Scalar strings are accepted as one-element slices.
		list, err := GetStringSlice("exclude")
		require.NoError(t, err)
		assert.Equal(t, []string{"Hidden"}, list)

		// Falls back to the bare key.
		s, err = GetString("candidate")
		require.NoError(t, err)
		assert.Equal(t, "./web/json", s)
	})
}

func TestGet_Paths(t *testing.T) {
	withConfig(t, "setdiff.yaml", func(t *testing.T) {
		_, err := Config.get("cache.clean.deeper")
		assert.ErrorContains(t, err, "no valid path found")

		_, err = Config.get("nope.nested")
		assert.ErrorContains(t, err, "no valid path found")
	})
}
