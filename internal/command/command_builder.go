// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/config"
	"github.com/setdiff/setdiff/internal/meta"
)

// CommandBuilder constructs a subcommand the same way for every command:
// metadata is attached, flags are sorted for --help and the config
// namespace is set before the action runs.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (b *CommandBuilder) Build() *cli.Command {
	flags := b.Flags
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Names()[0] < flags[j].Names()[0]
	})

	return &cli.Command{
		Name:      b.Name,
		Usage:     b.Usage,
		UsageText: b.UsageText,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			config.Config.Namespace = b.Name
			return ctx, nil
		},
		Action: b.Action,
	}
}
