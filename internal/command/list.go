// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/meta"
	"github.com/setdiff/setdiff/internal/runner"
)

// listCommandAction prints the sets compare would visit, one per line.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	r := &runner.Runner{
		Catalog: candidateDir(cmd),
		Exclude: cmd.StringSlice("exclude"),
	}

	names, err := r.Names(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.Root().Writer, name)
	}
	return nil
}

func listCommandBuilder(meta meta.Meta) *cli.Command {
	ns, path := "list", meta.Config.Source

	return (&CommandBuilder{
		Name:      "list",
		Usage:     "list the sets in the candidate directory",
		UsageText: "setdiff list [options]",
		Flags: []cli.Flag{
			NewCandidateFlag(ns, path),
			NewListSuffixFlag(ns, path),
			NewReadSuffixFlag(ns, path),
			NewExcludeFlag(ns, path),
		},
		Action: listCommandAction,
		Meta:   meta,
	}).Build()
}
