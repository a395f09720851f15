// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/setdiff/setdiff/internal/config"
)

// Meta contains runtime metadata shared by commands: the raw CLI arguments,
// the loaded configuration, the root context and the starting directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
