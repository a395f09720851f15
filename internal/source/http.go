// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/setdiff/setdiff/internal/cacheutil"
	"github.com/setdiff/setdiff/internal/log"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3
)

// HTTP fetches <Base>/<name><Suffix> with retries on transient failures.
type HTTP struct {
	Base   string
	Suffix string
	Cache  bool
	MaxAge time.Duration

	client *retryablehttp.Client
}

// NewHTTP returns an HTTP reference rooted at base.
func NewHTTP(base string, opts Options) *HTTP {
	client := retryablehttp.NewClient()
	client.Logger = log.Leveled{}
	client.RetryMax = defaultRetries
	if opts.Retries > 0 {
		client.RetryMax = opts.Retries
	}
	client.HTTPClient.Timeout = defaultTimeout
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}

	return &HTTP{
		Base:   strings.TrimRight(base, "/"),
		Suffix: opts.Suffix,
		Cache:  opts.Cache,
		MaxAge: opts.CacheMaxAge,
		client: client,
	}
}

// Fetch implements Reference. A 404 is ErrNotFound; any other non-2xx status
// is an error.
func (h *HTTP) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := h.URL(name)

	if h.Cache {
		if entry, ok := cacheutil.Read("http", url, h.MaxAge); ok {
			return gunzip(entry.Data)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	var doc bytes.Buffer
	if _, err := io.Copy(&doc, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	log.Debugf("fetched %s (%s)", url, humanize.Bytes(uint64(doc.Len())))

	if h.Cache {
		if err := cacheutil.Write("http", url, doc.Bytes()); err != nil {
			log.WithError(err).Warn("failed to write reference to cache")
		}
	}

	return gunzip(doc.Bytes())
}

// URL returns the address Fetch requests for name.
func (h *HTTP) URL(name string) string {
	return h.Base + "/" + name + h.Suffix
}

func (h *HTTP) String() string {
	return h.Base
}
