// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cli

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vpsbot/pkg/collector"
	"github.com/mchmarny/vpsbot/pkg/config"
	"github.com/mchmarny/vpsbot/pkg/measurement"
	"github.com/mchmarny/vpsbot/pkg/report"
	"github.com/mchmarny/vpsbot/pkg/serializer"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the YAML configuration file",
		Sources: cli.EnvVars(envPrefix + "CONFIG"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path, ConfigMap URI (cm://namespace/name), or stdout when empty",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (supported: %v)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatText),
	}
}

// collectionFlags override the collection settings of the config file.
func collectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "parallel",
			Usage:   "run collectors concurrently",
			Sources: cli.EnvVars(envPrefix + "PARALLEL"),
		},
		&cli.BoolFlag{
			Name:    "per-core-cpu",
			Usage:   "include per-core CPU usage",
			Sources: cli.EnvVars(envPrefix + "PER_CORE_CPU"),
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Usage:   "hide report entries whose label matches the wildcard pattern (can be repeated)",
			Sources: cli.EnvVars(envPrefix + "EXCLUDE"),
		},
		&cli.StringSliceFlag{
			Name:    "include",
			Usage:   "keep only report entries whose label matches the wildcard pattern (can be repeated)",
			Sources: cli.EnvVars(envPrefix + "INCLUDE"),
		},
		&cli.StringSliceFlag{
			Name:    "section",
			Usage:   fmt.Sprintf("collect only this section (can be repeated, supported: %v)", measurement.Types),
			Sources: cli.EnvVars(envPrefix + "SECTION"),
		},
	}
}

// botFlags override the bot settings of the config file.
func botFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Telegram bot token",
			Sources: cli.EnvVars(envPrefix + "TOKEN"),
		},
		&cli.Int64Flag{
			Name:    "admin-id",
			Usage:   "Telegram user ID of the administrator",
			Sources: cli.EnvVars(envPrefix + "ADMIN_ID"),
		},
		&cli.StringFlag{
			Name:    "metrics-address",
			Usage:   "listen address for /health, /ready and /metrics (disabled when empty)",
			Sources: cli.EnvVars(envPrefix + "METRICS_ADDRESS"),
		},
		&cli.StringFlag{
			Name:    "split-mode",
			Usage:   "report split mode (positional, lines)",
			Sources: cli.EnvVars(envPrefix + "SPLIT_MODE"),
		},
	}
}

// parseOutputFormat returns the --format value or an error if unsupported.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadConfig reads --config and applies any flag or environment overrides.
// Flags that are not defined on cmd are ignored.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("token") {
		cfg.Token = cmd.String("token")
	}
	if cmd.IsSet("admin-id") {
		cfg.AdminID = cmd.Int64("admin-id")
	}
	if cmd.IsSet("metrics-address") {
		cfg.MetricsAddress = cmd.String("metrics-address")
	}
	if cmd.IsSet("split-mode") {
		cfg.SplitMode = cmd.String("split-mode")
	}
	if cmd.IsSet("parallel") {
		cfg.Parallel = cmd.Bool("parallel")
	}
	if cmd.IsSet("per-core-cpu") {
		cfg.PerCoreCPU = cmd.Bool("per-core-cpu")
	}
	if cmd.IsSet("exclude") {
		cfg.ExcludeEntries = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("include") {
		cfg.IncludeEntries = cmd.StringSlice("include")
	}
	if cmd.IsSet("section") {
		cfg.Sections = cmd.StringSlice("section")
	}

	return cfg, nil
}

// newAssembler wires the collectors for cfg. started is the process start
// time shown as bot uptime.
func newAssembler(cfg *config.Config, started time.Time) *report.SystemAssembler {
	// ValidateSettings has already rejected unknown sections.
	sections, _ := cfg.SectionTypes()
	return &report.SystemAssembler{
		Version: version,
		Factory: collector.NewDefaultFactory(
			collector.WithStartTime(started),
			collector.WithCPUSampleInterval(cfg.CPUSampleInterval),
			collector.WithPerCoreCPU(cfg.PerCoreCPU),
			collector.WithTopProcesses(cfg.TopProcesses),
		),
		Parallel: cfg.Parallel,
		Include:  cfg.IncludeEntries,
		Exclude:  cfg.ExcludeEntries,
		Sections: sections,
	}
}
