// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/config"
	"github.com/setdiff/setdiff/internal/log"
	"github.com/setdiff/setdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// args[1] is the subcommand and doubles as the config namespace. It may
	// be -h/--help, so ignore anything that looks like a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	switch {
	case errors.Is(err, config.ErrNoConfig):
		log.Debug("no config file")
	case err != nil:
		log.WithError(err).Warn("config not loaded")
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "setdiff",
		Usage: "reconcile JSON record sets against a reference",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "setdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compareCommandBuilder(meta),
		diffCommandBuilder(meta),
		keysCommandBuilder(meta),
		listCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	sort.Slice(app.Commands, func(i, j int) bool {
		return app.Commands[i].Name < app.Commands[j].Name
	})

	return app, nil
}
