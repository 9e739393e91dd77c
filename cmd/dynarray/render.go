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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gorse-io/dynarray/scenario"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func renderReport(w io.Writer, report *scenario.Report, format string) error {
	switch format {
	case "table":
		table := tablewriter.NewWriter(w)
		table.Header("scenario", "result", "steps", "failed step", "message", "duration")
		for _, result := range report.Results {
			status, failedStep := "PASS", ""
			if !result.Passed {
				status, failedStep = "FAIL", strconv.Itoa(result.FailedStep)
			}
			if err := table.Append([]string{
				result.Scenario,
				status,
				strconv.Itoa(result.Steps),
				failedStep,
				result.Message,
				result.Duration.String(),
			}); err != nil {
				return errors.Trace(err)
			}
		}
		if err := table.Render(); err != nil {
			return errors.Trace(err)
		}
		_, err := fmt.Fprintf(w, "run %s (seed %d): %d passed, %d failed\n",
			report.RunID, report.Seed, report.NumPassed(), report.NumFailed())
		return errors.Trace(err)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(report); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(encoder.Close())
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Trace(encoder.Encode(report))
	default:
		return errors.NotSupportedf("output format %s", format)
	}
}
