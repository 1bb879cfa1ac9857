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

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/vpsbot/pkg/chunk"
	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/errors"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// Config holds everything the bot needs at startup. Values come from an
// optional YAML file and are overridden by flags and environment variables.
type Config struct {
	// Token is the Telegram bot token.
	Token string `yaml:"token"`

	// AdminID is the only Telegram user allowed to request reports.
	AdminID int64 `yaml:"adminID"`

	MaxMessageLength int    `yaml:"maxMessageLength"`
	SplitMode        string `yaml:"splitMode"`
	ParseMode        string `yaml:"parseMode"`

	CPUSampleInterval time.Duration `yaml:"cpuSampleInterval"`
	TopProcesses      int           `yaml:"topProcesses"`
	PerCoreCPU        bool          `yaml:"perCoreCPU"`
	Parallel          bool          `yaml:"parallel"`

	// ExcludeEntries hides report entries whose label matches a wildcard pattern.
	ExcludeEntries []string `yaml:"excludeEntries"`
	// IncludeEntries, when set, keeps only entries whose label matches a
	// wildcard pattern. Exclusions apply after it.
	IncludeEntries []string `yaml:"includeEntries"`
	// Sections limits collection to these section types (identity, cpu, ...).
	// Empty collects every section.
	Sections []string `yaml:"sections"`

	SendRate  float64 `yaml:"sendRate"`
	SendBurst int     `yaml:"sendBurst"`

	// MetricsAddress enables the health and metrics server when set, e.g. ":9090".
	MetricsAddress string `yaml:"metricsAddress"`
}

// Default returns a Config populated with default values and no credentials.
func Default() *Config {
	return &Config{
		MaxMessageLength:  defaults.MaxMessageLength,
		SplitMode:         string(chunk.ModePositional),
		ParseMode:         "Markdown",
		CPUSampleInterval: defaults.CPUSampleInterval,
		TopProcesses:      defaults.TopProcesses,
		SendRate:          defaults.SendRate,
		SendBurst:         defaults.SendBurst,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigMissing, fmt.Sprintf("failed to read config %s", path), err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to parse config %s", path), err)
	}
	return cfg, nil
}

// Validate checks credentials and limits. Missing credentials yield
// ErrCodeConfigMissing, bad values ErrCodeInvalidRequest.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New(errors.ErrCodeConfigMissing, "bot token is required")
	}
	if c.AdminID == 0 {
		return errors.New(errors.ErrCodeConfigMissing, "admin id is required")
	}
	return c.ValidateSettings()
}

// ValidateSettings checks everything except credentials, for commands that
// never talk to Telegram.
func (c *Config) ValidateSettings() error {
	if c.MaxMessageLength <= 0 || c.MaxMessageLength > defaults.MaxMessageLength {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "max message length out of range",
			map[string]any{"value": c.MaxMessageLength, "max": defaults.MaxMessageLength})
	}
	if _, err := chunk.ParseMode(c.SplitMode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid split mode", err)
	}
	if c.CPUSampleInterval <= 0 || c.CPUSampleInterval >= defaults.CollectorTimeout {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "cpu sample interval out of range",
			map[string]any{"value": c.CPUSampleInterval.String(), "max": defaults.CollectorTimeout.String()})
	}
	if c.TopProcesses <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "top processes must be positive")
	}
	if c.SendRate <= 0 || c.SendBurst <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "send rate and burst must be positive")
	}
	if _, err := c.SectionTypes(); err != nil {
		return err
	}
	return nil
}

// SectionTypes parses Sections. A nil result means every section.
func (c *Config) SectionTypes() ([]measurement.Type, error) {
	if len(c.Sections) == 0 {
		return nil, nil
	}
	out := make([]measurement.Type, 0, len(c.Sections))
	for _, s := range c.Sections {
		t, ok := measurement.ParseType(s)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown section",
				map[string]any{"value": s, "supported": measurement.Types})
		}
		out = append(out, t)
	}
	return out, nil
}

// Split returns the configured split function.
func (c *Config) Split() chunk.Split {
	m, err := chunk.ParseMode(c.SplitMode)
	if err != nil {
		m = chunk.ModePositional
	}
	return chunk.For(m)
}
