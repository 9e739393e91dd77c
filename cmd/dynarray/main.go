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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/gorse-io/dynarray/cmd/version"
	"github.com/gorse-io/dynarray/config"
	"github.com/gorse-io/dynarray/scenario"
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "dynarray",
	Short: "Scenario harness for the dynarray vector.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}
		_ = cmd.Help()
	},
}

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run scenarios against fresh vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, seed, err := loadConfig(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		runner, err := scenario.NewRunner(conf, seed)
		if err != nil {
			return errors.Trace(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if conf.Harness.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, conf.Harness.Timeout)
			defer cancel()
		}

		bar := progressbar.NewOptions(runner.Len(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Running scenarios"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
		runner.SetObserver(func(scenario.Result) {
			_ = bar.Add(1)
		})
		report, runErr := runner.Run(ctx)
		_ = bar.Finish()
		if runErr != nil {
			log.Logger().Error("scenarios interrupted", zap.Error(runErr))
		}

		output, _ := cmd.Flags().GetString("output")
		if err := renderReport(os.Stdout, report, output); err != nil {
			return errors.Trace(err)
		}
		if runErr != nil {
			return errors.Trace(runErr)
		}
		if !report.OK() {
			return errors.Errorf("%d of %d scenarios failed", report.NumFailed(), len(report.Results))
		}
		return nil
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

// loadConfig loads the config file and resolves the seed. A --seed flag overrides the
// file, and a zero seed is replaced by one derived from the clock.
func loadConfig(cmd *cobra.Command) (*config.Config, int64, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		log.Logger().Info("load config", zap.String("config", configPath))
	}
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	seed := conf.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}
	if seed == 0 {
		seed = base.TimeSeed()
	}
	log.Logger().Info("seed random generator", zap.Int64("seed", seed))
	return conf, seed, nil
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path (toml or yaml)")
	rootCommand.PersistentFlags().Int64("seed", 0, "seed of the random generator (0 derives one from the clock)")
	rootCommand.Flags().BoolP("version", "v", false, "dynarray version")

	runCommand.Flags().StringP("output", "o", "table", "output format (table, yaml or json)")
	benchCommand.Flags().Int("count", 0, "number of appends per round (overrides config)")
	benchCommand.Flags().Int("rounds", 0, "number of rounds (overrides config)")

	rootCommand.AddCommand(runCommand, benchCommand, versionCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
