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
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

// arity is the number of arguments each operation accepts.
var arity = map[string][]int{
	OpCheck:   {0},
	OpFill:    {1},
	OpReserve: {1},
	OpResize:  {1},
	OpClear:   {0},
	OpShrink:  {0},
	OpErase:   {0, 2},
	OpAt:      {1},
	OpAssign:  {2},
}

// Validate checks struct tags first and then the arguments of every step.
func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.NotValidf("config: %v", err)
	}
	for _, scenario := range config.Scenarios {
		for i, step := range scenario.Steps {
			if err := validateStep(step); err != nil {
				return errors.Annotatef(err, "scenario %s step %d", scenario.Name, i)
			}
		}
	}
	return nil
}

func validateStep(step StepConfig) error {
	if step.Op == OpAppend {
		if len(step.Args) == 0 {
			return errors.NotValidf("append without values")
		}
		return nil
	}
	expected := arity[step.Op]
	valid := false
	for _, n := range expected {
		if len(step.Args) == n {
			valid = true
		}
	}
	if !valid {
		return errors.NotValidf("%s with %d arguments", step.Op, len(step.Args))
	}
	if step.Op == OpFill && step.Args[0] < 0 {
		return errors.NotValidf("fill with negative count %d", step.Args[0])
	}
	return nil
}
