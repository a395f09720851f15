// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/setdiff/setdiff/internal/awsx"
	"github.com/setdiff/setdiff/internal/log"
)

// ErrNotFound reports that a reference has no blob for the requested set.
// Callers treat it as "skip this set", not as a failure.
var ErrNotFound = errors.New("not found")

// Catalog enumerates the set names to compare.
type Catalog interface {
	List(ctx context.Context) ([]string, error)
}

// Reference fetches the published version of a set.
type Reference interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	String() string
}

// Candidate reads the locally built version of a set.
type Candidate interface {
	Read(ctx context.Context, name string) ([]byte, error)
	String() string
}

// Options tune the Reference built by NewReference.
type Options struct {
	// Suffix is appended to the set name to form the object name.
	Suffix string
	// Cache keeps remote blobs on disk via cacheutil.
	Cache bool
	// CacheMaxAge bounds how old a cached blob may be. Zero accepts any age.
	CacheMaxAge time.Duration
	Timeout     time.Duration
	Retries     int

	// S3 only.
	Profile  string
	Region   string
	Endpoint string
}

// NewReference selects a Reference implementation from spec: s3://bucket/prefix,
// http(s)://host/path or a local directory.
func NewReference(ctx context.Context, spec string, opts Options) (Reference, error) {
	if spec == "" {
		return nil, errors.New("no reference source given")
	}

	switch {
	case strings.HasPrefix(spec, "s3://"):
		u, err := url.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid s3 reference %q: %w", spec, err)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("invalid s3 reference %q: missing bucket", spec)
		}

		var cfgOpts []awsx.Option
		if opts.Profile != "" {
			cfgOpts = append(cfgOpts, awsx.WithProfile(opts.Profile))
		}
		if opts.Region != "" {
			cfgOpts = append(cfgOpts, awsx.WithRegion(opts.Region))
		}
		cfg, err := awsx.LoadConfig(ctx, cfgOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		log.Debugf("reference: s3 bucket=%s prefix=%s", u.Host, u.Path)
		return &S3{
			Client: awsx.NewS3(cfg, awsx.WithEndpoint(opts.Endpoint)),
			Bucket: u.Host,
			Prefix: strings.Trim(u.Path, "/"),
			Suffix: opts.Suffix,
			Cache:  opts.Cache,
			MaxAge: opts.CacheMaxAge,
		}, nil

	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		log.Debugf("reference: http base=%s", spec)
		return NewHTTP(spec, opts), nil

	default:
		log.Debugf("reference: dir root=%s", spec)
		return &Dir{Root: spec, ReadSuffix: opts.Suffix}, nil
	}
}
