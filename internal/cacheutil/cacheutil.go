// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/blake2b"

	"github.com/setdiff/setdiff/internal/log"
)

// Entry is a reference blob held on disk. Key is the clear-text key, usually
// the URL the blob was fetched from. EncodedKey is the file name.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
	ModTime    time.Time
}

// Age reports how long ago the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.ModTime)
}

// Dir resolves the base cache directory. SETDIFF_CACHE_DIR wins when set,
// otherwise os.UserCacheDir()/setdiff is used. ("", false) means caching is
// unavailable.
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("SETDIFF_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "setdiff"), true
	}
	return "", false
}

// Enabled is false when SETDIFF_CACHE is "0" or "false".
func Enabled() bool {
	enabled, _ := os.LookupEnv("SETDIFF_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Path returns where the entry for clearKey lives under namespace, and
// whether a file is there now.
func Path(namespace, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	p := filepath.Join(base, namespace, EncodeKey(clearKey))
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		return p, true
	}
	return p, false
}

// Read returns the cached entry for clearKey. Entries older than maxAge are
// treated as misses; maxAge <= 0 accepts any age.
func Read(namespace, clearKey string, maxAge time.Duration) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := Path(namespace, clearKey)
	if !ok {
		return nil, false
	}
	fi, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if maxAge > 0 && time.Since(fi.ModTime()) > maxAge {
		log.Debugf("cache stale: key=%s age=%s", clearKey, humanize.Time(fi.ModTime()))
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s size=%s", clearKey, humanize.Bytes(uint64(len(b))))
	return &Entry{
		Key:        clearKey,
		EncodedKey: filepath.Base(p),
		Path:       p,
		Data:       b,
		ModTime:    fi.ModTime(),
	}, true
}

// Write stores data for clearKey under namespace, creating directories as
// needed. It is a no-op when caching is disabled.
func Write(namespace, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	dir := filepath.Join(base, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Write to a temp file and rename so concurrent readers never see a
	// partial blob.
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, EncodeKey(clearKey))); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s size=%s", clearKey, humanize.Bytes(uint64(len(data))))
	return nil
}

// Purge removes cache files older than maxAge. maxAge <= 0 disables it.
func Purge(maxAge time.Duration) error {
	if maxAge <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	err := filepath.Walk(base, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if info == nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// EncodeKey hashes a clear-text key into a file name.
func EncodeKey(input string) string {
	sum := blake2b.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
