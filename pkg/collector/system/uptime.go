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
	"time"

	"github.com/mchmarny/vpsbot/pkg/humanize"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// TimeLayout is the timestamp format used across reports.
const TimeLayout = "2006-01-02 15:04:05"

// UptimeCollector reports boot time, system uptime, bot uptime and the
// current time. StartTime is captured once when the process starts.
type UptimeCollector struct {
	Platform  Platform
	StartTime time.Time
	// Now defaults to time.Now.
	Now func() time.Time
}

// Collect implements collector.Collector.
func (c *UptimeCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting uptime")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.StartTime.IsZero() {
		return nil, fmt.Errorf("process start time not set")
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now()

	b := measurement.NewSection(measurement.TypeUptime)

	boot, err := c.Platform.BootTime(ctx)
	if err != nil {
		slog.Debug("boot time unavailable", "error", err)
	} else {
		b.SetScalar("Boot Time", boot.Format(TimeLayout)).
			SetScalar("System Uptime", humanize.Duration(t.Sub(boot)))
	}

	b.SetScalar("Bot Uptime", humanize.Duration(t.Sub(c.StartTime))).
		SetScalar("Current Time", t.Format(TimeLayout))

	return b.Build(), nil
}
