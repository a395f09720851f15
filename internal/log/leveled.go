// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"github.com/apex/log"
)

// Leveled adapts apex to the key/value leveled logger interface used by
// hashicorp/go-retryablehttp.
type Leveled struct{}

func (Leveled) Error(msg string, keysAndValues ...interface{}) {
	entry(keysAndValues).Error(msg)
}

func (Leveled) Info(msg string, keysAndValues ...interface{}) {
	// Request chatter is debug noise for a CLI.
	entry(keysAndValues).Debug(msg)
}

func (Leveled) Debug(msg string, keysAndValues ...interface{}) {
	entry(keysAndValues).Debug(msg)
}

func (Leveled) Warn(msg string, keysAndValues ...interface{}) {
	entry(keysAndValues).Warn(msg)
}

func entry(keysAndValues []interface{}) *log.Entry {
	fields := log.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok {
			fields[k] = keysAndValues[i+1]
		}
	}
	return log.WithFields(fields)
}
