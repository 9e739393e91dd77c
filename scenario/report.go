// Copyright 2026 gorse Project Authors
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

package scenario

import (
	"time"

	"github.com/samber/lo"
)

type Report struct {
	RunID   string   `json:"run_id" yaml:"run_id"`
	Seed    int64    `json:"seed" yaml:"seed"`
	Results []Result `json:"results" yaml:"results"`
}

type Result struct {
	Scenario string `json:"scenario" yaml:"scenario"`
	Passed   bool   `json:"passed" yaml:"passed"`
	Steps    int    `json:"steps" yaml:"steps"`
	// FailedStep is -1 when the scenario passed.
	FailedStep int           `json:"failed_step" yaml:"failed_step"`
	Message    string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

func (r *Report) NumPassed() int {
	return lo.CountBy(r.Results, func(result Result) bool { return result.Passed })
}

func (r *Report) NumFailed() int {
	return len(r.Results) - r.NumPassed()
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	return lo.Filter(r.Results, func(result Result, _ int) bool { return !result.Passed })
}

// OK returns true if every scenario ran and passed.
func (r *Report) OK() bool {
	return r.NumFailed() == 0
}
