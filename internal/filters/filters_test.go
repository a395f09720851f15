// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/setdiff/setdiff/internal/record"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testParseCase represents a single test case for TestParse.
type testParseCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
	WantErr   bool     `yaml:"wantErr"`
}

// testMatchCase represents a single test case for TestMatch.
type testMatchCase struct {
	Name string `yaml:"name"`
	Spec string `yaml:"spec"`
	Want bool   `yaml:"want"`
}

const abomination = `{
	"id": "EX1_097",
	"name": "Abomination",
	"type": "MINION",
	"cost": 5,
	"collectible": true,
	"text": "<b>Taunt</b>. <b>Deathrattle:</b> Deal 2 damage. Battlecry? No.",
	"mechanics": ["TAUNT", "DEATHRATTLE"],
	"stats": {"attack": 4, "health": 4}
}`

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestParse(t *testing.T) {
	var tests []testParseCase
	require.NoError(t, loadTestData("parse.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("SETDIFF_FILTER_DELIM", tt.Delimiter)
			}

			got, err := Parse(tt.Spec)
			if tt.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	var tests []testMatchCase
	require.NoError(t, loadTestData("match.yaml", &tests))

	v, err := record.DecodeValue([]byte(abomination))
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			filters, err := Parse(tt.Spec)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, Match(v, filters))
		})
	}
}

func TestApply(t *testing.T) {
	c, err := record.Decode([]byte(`[
		{"id":"A","type":"MINION","cost":1},
		{"id":"B","type":"SPELL","cost":2},
		{"id":"C","type":"MINION","cost":3},
		"not a record"
	]`))
	require.NoError(t, err)

	filters, err := Parse("type=MINION")
	require.NoError(t, err)

	got := Apply(c, filters)
	require.Len(t, got, 2)
	assert.Equal(t, `{"id":"A","type":"MINION","cost":1}`, record.Text(got[0]))
	assert.Equal(t, `{"id":"C","type":"MINION","cost":3}`, record.Text(got[1]))

	assert.Len(t, Apply(c, nil), 4)
}
