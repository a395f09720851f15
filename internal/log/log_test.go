// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"trace":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(name))
		})
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)

	err := h.HandleLog(&log.Entry{Level: log.InfoLevel, Message: "Comparing: Basic", Fields: log.Fields{}})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " I Comparing: Basic\n")

	buf.Reset()
	_ = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: deep", Fields: log.Fields{}})
	assert.Contains(t, buf.String(), " T deep\n")

	buf.Reset()
	_ = h.HandleLog(&log.Entry{Level: log.WarnLevel, Message: "retrying", Fields: log.Fields{"url": "u", "attempt": 2}})
	assert.Contains(t, buf.String(), " W retrying attempt=2 url=u\n")
}

func TestLeveled_PairsBecomeFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetHandler(NewHandler(&buf))
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	Leveled{}.Warn("request failed", "url", "http://x", "status", 500, "dangling")
	assert.Contains(t, buf.String(), "W request failed status=500 url=http://x")
}
