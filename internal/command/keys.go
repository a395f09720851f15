// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/keyexpr"
	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/meta"
	"github.com/setdiff/setdiff/internal/reconcile"
	"github.com/setdiff/setdiff/internal/record"
	"github.com/setdiff/setdiff/internal/source"
)

// keysCommandAction prints the key of every record in a file so a --key
// can be checked before a compare. Template keys that do not evaluate are
// reported instead of silently falling back.
func keysCommandAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("keys needs exactly one file, got %d", len(args))
	}

	data, err := source.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	collection, err := record.Decode(data)
	if err != nil {
		return err
	}

	spec := cmd.String("key")
	keyFn, err := keyFunc(spec)
	if err != nil {
		return err
	}
	template := strings.Contains(spec, "${")

	out := cmd.Root().Writer
	fallbacks := 0
	for i, v := range collection {
		key := keyFn(v)
		if template {
			if _, err := keyexpr.Eval(spec, v); err != nil {
				log.WithError(err).Warnf("record %d keyed by its JSON text", i)
				fallbacks++
			}
		}
		fmt.Fprintln(out, record.Quote(key))
	}

	keyed := reconcile.NewKeyed(collection, keyFn)
	for _, k := range keyed.Duplicates {
		log.Warnf("duplicate key %s", record.Quote(k))
	}

	if fallbacks > 0 {
		return fmt.Errorf("%d of %d record(s) did not evaluate the key", fallbacks, len(collection))
	}
	if cmd.Bool("strict-keys") && len(keyed.Duplicates) > 0 {
		return fmt.Errorf("%d duplicate key(s)", len(keyed.Duplicates))
	}
	return nil
}

func keysCommandBuilder(meta meta.Meta) *cli.Command {
	ns, path := "keys", meta.Config.Source

	return (&CommandBuilder{
		Name:      "keys",
		Usage:     "print the key of every record in a set file",
		UsageText: "setdiff keys [options] FILE",
		Flags: []cli.Flag{
			NewKeyFlag(ns, path),
			NewStrictKeysFlag(ns, path),
		},
		Action: keysCommandAction,
		Meta:   meta,
	}).Build()
}
