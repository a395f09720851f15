// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("SETDIFF_CACHE_DIR", custom)

	dir, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, custom, dir)

	t.Setenv("SETDIFF_CACHE_DIR", "")
	dir, ok = Dir()
	if ok {
		assert.True(t, filepath.IsAbs(dir))
		assert.Equal(t, "setdiff", filepath.Base(dir))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("SETDIFF_CACHE", tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

func TestWriteRead(t *testing.T) {
	t.Setenv("SETDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("SETDIFF_CACHE", "")

	key := "https://api.example.com/v1/latest/enUS/CORE.json"
	data := []byte(`[{"name":"A","id":1}]`)

	_, ok := Read("http", key, 0)
	assert.False(t, ok)

	require.NoError(t, Write("http", key, data))

	entry, ok := Read("http", key, 0)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, EncodeKey(key), entry.EncodedKey)
	assert.Equal(t, data, entry.Data)
	assert.Less(t, entry.Age(), time.Minute)

	// Namespaces are separate.
	_, ok = Read("s3", key, 0)
	assert.False(t, ok)
}

func TestRead_Stale(t *testing.T) {
	t.Setenv("SETDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("SETDIFF_CACHE", "")

	require.NoError(t, Write("http", "k", []byte("v")))
	p, ok := Path("http", "k")
	require.True(t, ok)

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(p, old, old))

	_, ok = Read("http", "k", time.Hour)
	assert.False(t, ok)

	_, ok = Read("http", "k", 0)
	assert.True(t, ok)
}

func TestDisabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SETDIFF_CACHE_DIR", dir)
	t.Setenv("SETDIFF_CACHE", "false")

	require.NoError(t, Write("http", "k", []byte("v")))
	_, ok := Read("http", "k", 0)
	assert.False(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurge(t *testing.T) {
	t.Setenv("SETDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("SETDIFF_CACHE", "")

	require.NoError(t, Write("http", "old", []byte("1")))
	require.NoError(t, Write("http", "new", []byte("2")))

	oldPath, _ := Path("http", "old")
	stamp := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stamp, stamp))

	require.NoError(t, Purge(24*time.Hour))

	_, ok := Path("http", "old")
	assert.False(t, ok)
	_, ok = Path("http", "new")
	assert.True(t, ok)

	// Disabled purge leaves everything alone.
	require.NoError(t, Purge(0))
	_, ok = Path("http", "new")
	assert.True(t, ok)
}

func TestPurge_MissingDir(t *testing.T) {
	t.Setenv("SETDIFF_CACHE_DIR", filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, Purge(time.Hour))
}

func TestEncodeKey(t *testing.T) {
	a := EncodeKey("a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, EncodeKey("a"))
	assert.NotEqual(t, a, EncodeKey("b"))
}
