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
	"sort"
	"strings"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// ProcessCollector reports the process count and the Top processes by CPU.
type ProcessCollector struct {
	Platform Platform
	Top      int
}

// Collect implements collector.Collector.
func (c *ProcessCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting processes")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	procs, err := c.Platform.Processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	n := c.Top
	if n <= 0 {
		n = defaults.TopProcesses
	}

	b := measurement.NewSection(measurement.TypeProcesses).
		SetScalarf("Total Processes", "%d", len(procs))

	if top := TopByCPU(procs, n); len(top) > 0 {
		lines := make([]string, 0, len(top))
		for _, p := range top {
			lines = append(lines, fmt.Sprintf(" - `%s` CPU: %.1f%%, RAM: %.1f%%", displayName(p), p.CPUPercent, p.MemPercent))
		}
		b.SetMultiline("Top Processes (CPU)", strings.Join(lines, "\n"))
	}

	return b.Build(), nil
}

// displayName is the process name as it can sit inside a Markdown code
// span. Processes that could not be inspected show their PID.
func displayName(p Process) string {
	if p.Name == "" {
		return fmt.Sprintf("pid %d", p.PID)
	}
	return strings.ReplaceAll(p.Name, "`", "'")
}

// TopByCPU returns up to n processes with the highest CPU percentage.
// Ties keep enumeration order, which the platform does not guarantee to be
// stable between calls.
func TopByCPU(procs []Process, n int) []Process {
	top := make([]Process, len(procs))
	copy(top, procs)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].CPUPercent > top[j].CPUPercent
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
