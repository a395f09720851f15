// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/filters"
	"github.com/setdiff/setdiff/internal/meta"
	"github.com/setdiff/setdiff/internal/report"
	"github.com/setdiff/setdiff/internal/runner"
	"github.com/setdiff/setdiff/internal/source"
)

// diffCommandAction compares two local files.
func diffCommandAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("diff needs exactly two files, got %d", len(args))
	}

	oldData, err := source.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	newData, err := source.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	keyFn, err := keyFunc(cmd.String("key"))
	if err != nil {
		return err
	}

	fs, err := filters.Parse(cmd.String("filter"))
	if err != nil {
		return err
	}

	r := &runner.Runner{Key: keyFn, StrictKeys: cmd.Bool("strict-keys"), Filters: fs}
	name := strings.TrimSuffix(filepath.Base(args[1]), filepath.Ext(args[1]))
	res := r.CompareBytes(name, oldData, newData)
	if res.Status == runner.Failed {
		return res.Err
	}

	rw, err := report.NewWriter(cmd.Root().Writer, outputOptions(cmd))
	if err != nil {
		return err
	}
	if err := rw.Write(res, ""); err != nil {
		return err
	}
	return rw.Close()
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	ns, path := "diff", meta.Config.Source

	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "compare two local set files",
		UsageText: "setdiff diff [options] OLD NEW",
		Flags: []cli.Flag{
			NewFilterFlag(ns, path),
			NewKeyFlag(ns, path),
			NewStrictKeysFlag(ns, path),
			NewOutputFlag(ns, path),
			NewColorFlag(ns, path),
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}
