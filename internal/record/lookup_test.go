// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package record

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// lookupTestCase represents a single test case for TestLookup.
type lookupTestCase struct {
	Name     string `yaml:"name"`
	JSON     string `yaml:"json"`
	Path     string `yaml:"path"`
	Expected string `yaml:"expected"`
	Missing  bool   `yaml:"missing"`
}

func TestLookup(t *testing.T) {
	data, err := testDataFS.ReadFile("testdata/lookup_cases.yaml")
	require.NoError(t, err)

	var tests []lookupTestCase
	require.NoError(t, yaml.Unmarshal(data, &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			v, err := DecodeValue([]byte(tt.JSON))
			require.NoError(t, err)

			got, ok := Lookup(v, tt.Path)
			if tt.Missing {
				assert.False(t, ok)
				assert.Equal(t, "undefined", Format(got, ok))
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.Expected, Format(got, ok))
		})
	}
}

func TestLookup_EmptyPathReturnsValue(t *testing.T) {
	v := String("x")
	got, ok := Lookup(v, "")
	assert.True(t, ok)
	assert.Equal(t, v, got)
}
