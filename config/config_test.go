// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	config := GetDefaultConfig()
	assert.Zero(t, config.Seed)
	// [harness]
	assert.Equal(t, 0, config.Harness.FillLow)
	assert.Equal(t, 100, config.Harness.FillHigh)
	assert.Equal(t, time.Minute, config.Harness.Timeout)
	assert.False(t, config.Harness.StopOnFailure)
	// [bench]
	assert.Equal(t, 1000000, config.Bench.Count)
	assert.Equal(t, 5, config.Bench.Rounds)
	// [[scenario]]
	assert.Len(t, config.Scenarios, 16)
	names := lo.Map(config.Scenarios, func(s ScenarioConfig, _ int) string { return s.Name })
	assert.Contains(t, names, "out_of_range")
	assert.Contains(t, names, "negative_reserve")
	assign, ok := lo.Find(config.Scenarios, func(s ScenarioConfig) bool { return s.Name == "assign_values_to_collection" })
	require.True(t, ok)
	assert.Equal(t, StepConfig{Op: OpAssign, Args: []int{1, 1}, Expect: "!empty && size == 1"}, assign.Steps[0])
	reserve, ok := lo.Find(config.Scenarios, func(s ScenarioConfig) bool { return s.Name == "negative_reserve" })
	require.True(t, ok)
	assert.Equal(t, []int{-2}, reserve.Steps[0].Args)
	assert.Equal(t, ErrorInvalidArgument, reserve.Steps[0].Error)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed: 42
harness:
  fill_high: 10
  stop_on_failure: true
bench:
  rounds: 2
scenario:
  - name: append
    steps:
      - op: append
        args: [1, 2, 3]
        expect: size == 3
      - op: erase
        args: "0,1"
        expect: size == 2
`), 0644))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, 0, config.Harness.FillLow)
	assert.Equal(t, 10, config.Harness.FillHigh)
	assert.True(t, config.Harness.StopOnFailure)
	assert.Equal(t, 1000000, config.Bench.Count)
	assert.Equal(t, 2, config.Bench.Rounds)
	assert.Equal(t, []ScenarioConfig{{
		Name: "append",
		Steps: []StepConfig{
			{Op: OpAppend, Args: []int{1, 2, 3}, Expect: "size == 3"},
			{Op: OpErase, Args: []int{0, 1}, Expect: "size == 2"},
		},
	}}, config.Scenarios)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("DYNARRAY_SEED", "7")
	t.Setenv("DYNARRAY_BENCH_COUNT", "10")
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, 10, config.Bench.Count)
}

func TestLoadConfig_NotExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Harness: HarnessConfig{FillLow: 0, FillHigh: 100},
			Bench:   BenchConfig{Count: 1, Rounds: 1},
			Scenarios: []ScenarioConfig{{
				Name:  "ok",
				Steps: []StepConfig{{Op: OpFill, Args: []int{3}, Expect: "size == 3"}},
			}},
		}
	}
	assert.NoError(t, valid().Validate())

	testCases := map[string]func(c *Config){
		"empty fill range":   func(c *Config) { c.Harness.FillHigh = 0 },
		"no rounds":          func(c *Config) { c.Bench.Rounds = 0 },
		"negative timeout":   func(c *Config) { c.Harness.Timeout = -time.Second },
		"missing name":       func(c *Config) { c.Scenarios[0].Name = "" },
		"no steps":           func(c *Config) { c.Scenarios[0].Steps = nil },
		"unknown op":         func(c *Config) { c.Scenarios[0].Steps[0].Op = "push" },
		"unknown error":      func(c *Config) { c.Scenarios[0].Steps[0].Error = "length_error" },
		"negative fill":      func(c *Config) { c.Scenarios[0].Steps[0].Args = []int{-1} },
		"fill without count": func(c *Config) { c.Scenarios[0].Steps[0].Args = nil },
		"erase with one arg": func(c *Config) { c.Scenarios[0].Steps[0] = StepConfig{Op: OpErase, Args: []int{1}} },
		"assign with one arg": func(c *Config) {
			c.Scenarios[0].Steps[0] = StepConfig{Op: OpAssign, Args: []int{1}}
		},
		"empty append": func(c *Config) { c.Scenarios[0].Steps[0] = StepConfig{Op: OpAppend} },
	}
	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			err := c.Validate()
			assert.True(t, errors.Is(err, errors.NotValid), "%v", err)
		})
	}
}
