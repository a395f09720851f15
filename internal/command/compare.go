// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/meta"
	"github.com/setdiff/setdiff/internal/picker"
	"github.com/setdiff/setdiff/internal/report"
	"github.com/setdiff/setdiff/internal/runner"
)

// pick is replaced in tests. The picker draws on stderr.
var pick = func(names []string) ([]string, error) {
	return picker.Pick(names, tea.WithOutput(os.Stderr))
}

// compareCommandAction compares the named sets, or every set in the
// candidate directory, against the reference.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	r, err := buildRunner(ctx, cmd)
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()
	if cmd.Bool("pick") && len(names) == 0 {
		all, err := r.Names(ctx)
		if err != nil {
			return err
		}
		if names, err = pick(all); err != nil {
			return err
		}
		if len(names) == 0 {
			log.Infof("nothing selected")
			return nil
		}
	}

	opts := outputOptions(cmd)
	out := cmd.Root().Writer
	rw, err := report.NewWriter(out, opts)
	if err != nil {
		return err
	}

	titled := len(names) != 1
	var results []runner.Result
	runErr := r.Run(ctx, names, func(res runner.Result) {
		results = append(results, res)
		title := ""
		if titled {
			title = res.Name
		}
		if err := rw.Write(res, title); err != nil {
			log.WithError(err).Errorf("failed to render %s", res.Name)
		}
	})
	if err := rw.Close(); err != nil {
		log.WithError(err).Error("failed to flush output")
	}
	if runErr != nil {
		return runErr
	}

	if cmd.Bool("summary") {
		return report.Summary(summaryWriter(cmd, opts), results, opts)
	}
	return nil
}

// summaryWriter keeps machine-readable stdout clean.
func summaryWriter(cmd *cli.Command, opts report.Options) io.Writer {
	if opts.Format == "json" || opts.Format == "yaml" {
		return cmd.Root().ErrWriter
	}
	return cmd.Root().Writer
}

func compareCommandBuilder(meta meta.Meta) *cli.Command {
	ns, path := "compare", meta.Config.Source

	flags := []cli.Flag{
		NewReferenceFlag(ns, path),
		NewCandidateFlag(ns, path),
		NewListSuffixFlag(ns, path),
		NewReadSuffixFlag(ns, path),
		NewRefSuffixFlag(ns, path),
		NewExcludeFlag(ns, path),
		NewFilterFlag(ns, path),
		NewKeyFlag(ns, path),
		NewStrictKeysFlag(ns, path),
		NewOutputFlag(ns, path),
		NewColorFlag(ns, path),
		NewParallelFlag(ns, path),
		NewSummaryFlag(ns, path),
		NewPickFlag(),
	}
	flags = append(flags, NewCacheFlags(ns, path)...)
	flags = append(flags, NewFetchFlags(ns, path)...)
	flags = append(flags, NewAWSFlags(ns, path)...)

	return (&CommandBuilder{
		Name:      "compare",
		Usage:     "compare candidate sets against the reference",
		UsageText: "setdiff compare [options] [NAME...]",
		Flags:     flags,
		Action:    compareCommandAction,
		Meta:      meta,
	}).Build()
}
