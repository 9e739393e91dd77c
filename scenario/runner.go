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
	"context"
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/gorse-io/dynarray/common/vector"
	"github.com/gorse-io/dynarray/config"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

var errorKinds = map[string]error{
	config.ErrorOutOfRange:      vector.ErrOutOfRange,
	config.ErrorInvalidArgument: vector.ErrInvalidArgument,
	config.ErrorInvalidRange:    vector.ErrInvalidRange,
}

// Env is the state an expectation is evaluated against.
type Env struct {
	Size     int   `expr:"size"`
	Capacity int   `expr:"capacity"`
	MaxSize  int   `expr:"max_size"`
	Empty    bool  `expr:"empty"`
	Values   []int `expr:"values"`
	// Result is the element returned by at or the position returned by erase.
	Result int `expr:"result"`
}

func newEnv(v *vector.Vector[int], result int) Env {
	return Env{
		Size:     v.Len(),
		Capacity: v.Cap(),
		MaxSize:  v.MaxLen(),
		Empty:    v.IsEmpty(),
		Values:   v.Values(),
		Result:   result,
	}
}

type step struct {
	config.StepConfig
	expect *vm.Program
}

type scenario struct {
	name  string
	steps []step
}

// Runner runs scenarios, each against a fresh vector that is cleared afterwards.
type Runner struct {
	harness   config.HarnessConfig
	rng       base.RandomGenerator
	scenarios []scenario
	observer  func(Result)
}

// NewRunner compiles the expectations of all scenarios.
func NewRunner(cfg *config.Config, seed int64) (*Runner, error) {
	r := &Runner{
		harness: cfg.Harness,
		rng:     base.NewRandomGenerator(seed),
	}
	for _, sc := range cfg.Scenarios {
		compiled := scenario{name: sc.Name}
		for i, st := range sc.Steps {
			s := step{StepConfig: st}
			if st.Expect != "" {
				program, err := expr.Compile(st.Expect, expr.Env(Env{}), expr.AsBool())
				if err != nil {
					return nil, errors.Annotatef(err, "scenario %s step %d", sc.Name, i)
				}
				s.expect = program
			}
			compiled.steps = append(compiled.steps, s)
		}
		r.scenarios = append(r.scenarios, compiled)
	}
	return r, nil
}

// SetObserver registers a callback invoked after every scenario.
func (r *Runner) SetObserver(observer func(Result)) {
	r.observer = observer
}

// Len returns the number of scenarios.
func (r *Runner) Len() int {
	return len(r.scenarios)
}

// Run runs scenarios in order. It stops between scenarios once ctx is done and
// returns the partial report together with the context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID: uuid.NewString(),
		Seed:  r.rng.Seed(),
	}
	log.Logger().Info("start scenarios",
		zap.String("run_id", report.RunID),
		zap.Int64("seed", report.Seed),
		zap.Int("n_scenarios", len(r.scenarios)))
	for _, sc := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return report, errors.Trace(err)
		}
		result := r.runScenario(sc)
		report.Results = append(report.Results, result)
		if result.Passed {
			log.Logger().Debug("scenario passed", zap.String("scenario", result.Scenario))
		} else {
			log.Logger().Warn("scenario failed",
				zap.String("scenario", result.Scenario),
				zap.Int("step", result.FailedStep),
				zap.String("message", result.Message))
		}
		if r.observer != nil {
			r.observer(result)
		}
		if !result.Passed && r.harness.StopOnFailure {
			break
		}
	}
	log.Logger().Info("complete scenarios",
		zap.String("run_id", report.RunID),
		zap.Int("n_passed", report.NumPassed()),
		zap.Int("n_failed", report.NumFailed()))
	return report, nil
}

func (r *Runner) runScenario(sc scenario) Result {
	start := time.Now()
	result := Result{Scenario: sc.name, Steps: len(sc.steps), FailedStep: -1, Passed: true}
	// setup
	v := vector.New[int]()
	for i, st := range sc.steps {
		if msg := r.runStep(v, st); msg != "" {
			result.Passed = false
			result.FailedStep = i
			result.Message = fmt.Sprintf("%s: %s", st.Op, msg)
			break
		}
	}
	// teardown
	v.Clear()
	result.Duration = time.Since(start)
	return result
}

// runStep returns a failure message, or an empty string if the step passed.
func (r *Runner) runStep(v *vector.Vector[int], st step) string {
	value, err := r.apply(v, st.StepConfig)
	if st.Error != "" {
		if err == nil {
			return fmt.Sprintf("expected %s error", st.Error)
		}
		if !errors.Is(err, errorKinds[st.Error]) {
			return fmt.Sprintf("expected %s error, got %v", st.Error, err)
		}
	} else if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if st.expect != nil {
		env := newEnv(v, value)
		output, err := expr.Run(st.expect, env)
		if err != nil {
			return fmt.Sprintf("failed to evaluate `%s`: %v", st.Expect, err)
		}
		if !output.(bool) {
			return fmt.Sprintf("expected `%s` (size=%d, capacity=%d, result=%d)",
				st.Expect, env.Size, env.Capacity, env.Result)
		}
	}
	return ""
}

func (r *Runner) apply(v *vector.Vector[int], st config.StepConfig) (int, error) {
	switch st.Op {
	case config.OpCheck:
	case config.OpFill:
		v.Append(r.rng.UniformInts(st.Args[0], r.harness.FillLow, r.harness.FillHigh)...)
	case config.OpAppend:
		v.Append(st.Args...)
	case config.OpReserve:
		return 0, v.Reserve(st.Args[0])
	case config.OpResize:
		return 0, v.Resize(st.Args[0])
	case config.OpClear:
		v.Clear()
	case config.OpShrink:
		v.ShrinkToFit()
	case config.OpErase:
		first, last := v.Begin(), v.End()
		if len(st.Args) == 2 {
			var err error
			if first, err = v.PositionAt(st.Args[0]); err != nil {
				return 0, errors.WithType(err, vector.ErrInvalidRange)
			}
			if last, err = v.PositionAt(st.Args[1]); err != nil {
				return 0, errors.WithType(err, vector.ErrInvalidRange)
			}
		}
		next, err := v.Erase(first, last)
		return next.Index(), err
	case config.OpAt:
		return v.At(st.Args[0])
	case config.OpAssign:
		return 0, v.Assign(st.Args[0], st.Args[1])
	default:
		return 0, errors.NotSupportedf("operation %s", st.Op)
	}
	return 0, nil
}
