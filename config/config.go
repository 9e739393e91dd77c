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
	_ "embed"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

//go:embed config.toml
var defaultConfig string

const (
	OpCheck   = "check"
	OpFill    = "fill"
	OpAppend  = "append"
	OpReserve = "reserve"
	OpResize  = "resize"
	OpClear   = "clear"
	OpShrink  = "shrink"
	OpErase   = "erase"
	OpAt      = "at"
	OpAssign  = "assign"
)

const (
	ErrorOutOfRange      = "out_of_range"
	ErrorInvalidArgument = "invalid_argument"
	ErrorInvalidRange    = "invalid_range"
)

// Config is the configuration for the harness.
type Config struct {
	Seed      int64            `mapstructure:"seed"`
	Harness   HarnessConfig    `mapstructure:"harness"`
	Bench     BenchConfig      `mapstructure:"bench"`
	Scenarios []ScenarioConfig `mapstructure:"scenario" validate:"dive"`
}

type HarnessConfig struct {
	FillLow       int           `mapstructure:"fill_low"`
	FillHigh      int           `mapstructure:"fill_high" validate:"gtfield=FillLow"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gte=0"`
	StopOnFailure bool          `mapstructure:"stop_on_failure"`
}

type BenchConfig struct {
	Count  int `mapstructure:"count" validate:"gt=0"`
	Rounds int `mapstructure:"rounds" validate:"gt=0"`
}

// ScenarioConfig is a named sequence of steps run against a fresh vector.
type ScenarioConfig struct {
	Name  string       `mapstructure:"name" validate:"required"`
	Steps []StepConfig `mapstructure:"steps" validate:"required,dive"`
}

// StepConfig applies one operation. Expect is a boolean expression over the vector
// state after the operation; Error names the error kind the operation must fail with.
type StepConfig struct {
	Op     string `mapstructure:"op" validate:"oneof=check fill append reserve resize clear shrink erase at assign"`
	Args   []int  `mapstructure:"args"`
	Expect string `mapstructure:"expect"`
	Error  string `mapstructure:"error" validate:"omitempty,oneof=out_of_range invalid_argument invalid_range"`
}

// GetDefaultConfig returns the embedded configuration.
func GetDefaultConfig() *Config {
	conf, err := LoadConfig("")
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadConfig loads the embedded configuration, merges the file at path over it and
// applies DYNARRAY_* environment variables. Scenarios in the file replace the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Annotatef(err, "failed to read config %s", path)
		}
	}
	v.SetEnvPrefix("dynarray")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}
