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

package system

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/humanize"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// CPUCollector reports utilization, core counts and clock frequency.
// Utilization is sampled over SampleInterval, which blocks the collector.
type CPUCollector struct {
	Platform       Platform
	SampleInterval time.Duration
	PerCore        bool
}

// Collect implements collector.Collector.
func (c *CPUCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting cpu")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	interval := c.SampleInterval
	if interval <= 0 {
		interval = defaults.CPUSampleInterval
	}

	var errs []error
	b := measurement.NewSection(measurement.TypeCPU)

	percents, err := c.Platform.CPUPercent(ctx, interval, c.PerCore)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("cpu percent: %w", err))
	case len(percents) > 0:
		b.SetScalar("CPU Usage", humanize.Percent(mean(percents)))
	}

	if n, err := c.Platform.CPUCounts(ctx, false); err == nil {
		b.SetScalarf("Physical Cores", "%d", n)
	} else {
		errs = append(errs, fmt.Errorf("physical cores: %w", err))
	}
	if n, err := c.Platform.CPUCounts(ctx, true); err == nil {
		b.SetScalarf("Logical Cores", "%d", n)
	} else {
		errs = append(errs, fmt.Errorf("logical cores: %w", err))
	}

	freq, err := c.Platform.CPUFrequency(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("cpu frequency: %w", err))
	} else if freq != nil {
		b.SetScalarf("Current Frequency", "%.0f MHz", freq.Current)
		if freq.Max > 0 {
			b.SetScalarf("Max Frequency", "%.0f MHz", freq.Max)
		}
		if freq.Min > 0 {
			b.SetScalarf("Min Frequency", "%.0f MHz", freq.Min)
		}
	}

	if c.PerCore && len(percents) > 1 {
		lines := make([]string, 0, len(percents))
		for i, p := range percents {
			lines = append(lines, fmt.Sprintf(" - Core %d: %s", i, humanize.Percent(p)))
		}
		b.SetMultiline("Per Core Usage", strings.Join(lines, "\n"))
	}

	return finish(measurement.TypeCPU, b, errs)
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
