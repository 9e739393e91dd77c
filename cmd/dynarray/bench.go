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
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/gorse-io/dynarray/common/vector"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var benchCommand = &cobra.Command{
	Use:   "bench",
	Short: "Measure growth of the vector under appends",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, seed, err := loadConfig(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		count, rounds := conf.Bench.Count, conf.Bench.Rounds
		if cmd.Flags().Changed("count") {
			count, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("rounds") {
			rounds, _ = cmd.Flags().GetInt("rounds")
		}
		if count <= 0 || rounds <= 0 {
			return errors.NotValidf("count %d and rounds %d", count, rounds)
		}

		bar := progressbar.NewOptions(rounds,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Appending"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
		results := benchmark(base.NewRandomGenerator(seed), count, rounds, func(round benchRound) {
			_ = bar.Add(1)
			log.Logger().Debug("complete round",
				zap.Int("round", round.Round),
				zap.Int("capacity", round.Capacity),
				zap.Duration("elapsed", round.Elapsed))
		})
		_ = bar.Finish()
		return errors.Trace(renderBench(os.Stdout, results))
	},
}

type benchRound struct {
	Round         int
	Count         int
	Capacity      int
	Reallocations int
	Bytes         int
	Elapsed       time.Duration
}

// benchmark appends count random values to a fresh vector in each round.
func benchmark(rng base.RandomGenerator, count, rounds int, observe func(benchRound)) []benchRound {
	results := make([]benchRound, 0, rounds)
	for i := 0; i < rounds; i++ {
		v := vector.New[int]()
		start := time.Now()
		for j := 0; j < count; j++ {
			v.Append(rng.Int())
		}
		round := benchRound{
			Round:         i,
			Count:         v.Len(),
			Capacity:      v.Cap(),
			Reallocations: v.Reallocations(),
			Bytes:         v.Bytes(),
			Elapsed:       time.Since(start),
		}
		results = append(results, round)
		if observe != nil {
			observe(round)
		}
	}
	return results
}

func renderBench(w io.Writer, results []benchRound) error {
	table := tablewriter.NewWriter(w)
	table.Header("round", "count", "capacity", "reallocations", "bytes", "elapsed", "ns/append")
	for _, round := range results {
		if err := table.Append([]string{
			strconv.Itoa(round.Round),
			strconv.Itoa(round.Count),
			strconv.Itoa(round.Capacity),
			strconv.Itoa(round.Reallocations),
			strconv.Itoa(round.Bytes),
			round.Elapsed.String(),
			strconv.FormatFloat(float64(round.Elapsed.Nanoseconds())/float64(round.Count), 'f', 2, 64),
		}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}
