// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"

	"github.com/setdiff/setdiff/internal/cacheutil"
	"github.com/setdiff/setdiff/internal/log"
)

// GetObjectAPI is the slice of the S3 client that S3 needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3 fetches s3://<Bucket>/<Prefix>/<name><Suffix>.
type S3 struct {
	Client GetObjectAPI
	Bucket string
	Prefix string
	Suffix string
	Cache  bool
	MaxAge time.Duration
}

// Fetch implements Reference. NoSuchKey and HTTP 404 are ErrNotFound.
func (s *S3) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := s.Key(name)
	uri := "s3://" + s.Bucket + "/" + key

	if s.Cache {
		if entry, ok := cacheutil.Read("s3", uri, s.MaxAge); ok {
			return gunzip(entry.Data)
		}
	}

	result, err := s.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", uri, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get S3 object %s: %w", uri, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("fetched %s (%s)", uri, humanize.Bytes(uint64(len(data))))

	if s.Cache {
		if err := cacheutil.Write("s3", uri, data); err != nil {
			log.WithError(err).Warn("failed to write reference to cache")
		}
	}

	return gunzip(data)
}

// Key returns the object key for name.
func (s *S3) Key(name string) string {
	return path.Join(s.Prefix, name+s.Suffix)
}

func (s *S3) String() string {
	return "s3://" + path.Join(s.Bucket, s.Prefix)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound {
		return true
	}
	return false
}
