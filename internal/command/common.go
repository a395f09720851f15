// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/cacheutil"
	"github.com/setdiff/setdiff/internal/config"
	"github.com/setdiff/setdiff/internal/filters"
	"github.com/setdiff/setdiff/internal/keyexpr"
	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/meta"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/runner"
	"github.com/setdiff/setdiff/internal/source"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// keyFunc turns --key into a KeyFunc. Empty means `name (id)`. A value with
// a ${...} interpolation is an HCL template; anything else is a field path.
func keyFunc(spec string) (reconcile.KeyFunc, error) {
	switch {
	case spec == "":
		return reconcile.NameID, nil
	case strings.Contains(spec, "${"):
		fn, err := keyexpr.Compile(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid key template: %w", err)
		}
		return fn, nil
	default:
		return reconcile.Field(spec), nil
	}
}

// candidateDir builds the local directory from the candidate flags.
func candidateDir(cmd *cli.Command) *source.Dir {
	return &source.Dir{
		Root:       cmd.String("candidate"),
		ListSuffix: cmd.String("list-suffix"),
		ReadSuffix: cmd.String("read-suffix"),
	}
}

// purgeCache drops cached references older than cache.clean hours.
func purgeCache() {
	hours, _ := config.GetInt("cache.clean")
	if err := cacheutil.Purge(time.Duration(hours) * time.Hour); err != nil {
		log.WithError(err).Warnf("failed to purge cache")
	}
}

// buildRunner wires the catalog, the reference and the candidate from the
// command's flags.
func buildRunner(ctx context.Context, cmd *cli.Command) (*runner.Runner, error) {
	keyFn, err := keyFunc(cmd.String("key"))
	if err != nil {
		return nil, err
	}
	fs, err := filters.Parse(cmd.String("filter"))
	if err != nil {
		return nil, err
	}

	if cmd.Bool("cache") {
		purgeCache()
	}

	ref, err := source.NewReference(ctx, cmd.String("reference"), source.Options{
		Suffix:      cmd.String("ref-suffix"),
		Cache:       cmd.Bool("cache"),
		CacheMaxAge: cmd.Duration("cache-max-age"),
		Timeout:     cmd.Duration("timeout"),
		Retries:     cmd.Int("retries"),
		Profile:     cmd.String("profile"),
		Region:      cmd.String("region"),
		Endpoint:    cmd.String("endpoint"),
	})
	if err != nil {
		return nil, err
	}

	cand := candidateDir(cmd)
	m := GetMeta(cmd)
	log.Debugf("reference=%s candidate=%s config=%s cwd=%s", ref, cand, m.Config.Source, m.StartingDir)

	return &runner.Runner{
		Catalog:    cand,
		Reference:  ref,
		Candidate:  cand,
		Key:        keyFn,
		Exclude:    cmd.StringSlice("exclude"),
		Parallel:   cmd.Int("parallel"),
		StrictKeys: cmd.Bool("strict-keys"),
		Filters:    fs,
	}, nil
}
