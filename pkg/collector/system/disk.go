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

	"github.com/mchmarny/vpsbot/pkg/humanize"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// DiskCollector reports usage of every mounted partition and cumulative
// disk I/O. Partitions that fail to stat are skipped.
type DiskCollector struct {
	Platform Platform
}

// Collect implements collector.Collector.
func (c *DiskCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting disk")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var errs []error
	b := measurement.NewSection(measurement.TypeDisk)

	parts, err := c.Platform.Partitions(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("partitions: %w", err))
	}

	// Numbering follows enumeration so a skipped partition leaves a gap.
	for i, p := range parts {
		usage, err := c.Platform.DiskUsage(ctx, p.Mountpoint)
		if err != nil {
			slog.Debug("skipping partition", "mountpoint", p.Mountpoint, "error", err)
			continue
		}
		b.SetScalarf(fmt.Sprintf("Disk %d (%s)", i+1, p.Device), "Size: %s, Used: %s (%.1f%%)",
			humanize.Bytes(usage.Total), humanize.Bytes(usage.Used), usage.UsedPercent)
	}

	io, err := c.Platform.DiskIO(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("disk io: %w", err))
	case io != nil:
		b.SetScalarf("I/O Statistics", "Read: %s, Write: %s",
			humanize.Bytes(io.ReadBytes), humanize.Bytes(io.WriteBytes))
	}

	return finish(measurement.TypeDisk, b, errs)
}
