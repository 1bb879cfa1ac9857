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

// MemoryCollector reports physical memory and swap usage.
type MemoryCollector struct {
	Platform Platform
}

// Collect implements collector.Collector.
func (c *MemoryCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting memory")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var errs []error
	b := measurement.NewSection(measurement.TypeMemory)

	if vm, err := c.Platform.VirtualMemory(ctx); err == nil {
		b.SetScalar("Total Memory", humanize.Bytes(vm.Total)).
			SetScalar("Used Memory", humanize.Bytes(vm.Used)).
			SetScalar("Available Memory", humanize.Bytes(vm.Available)).
			SetScalar("Memory Usage", humanize.Percent(vm.UsedPercent))
	} else {
		errs = append(errs, fmt.Errorf("virtual memory: %w", err))
	}

	if sw, err := c.Platform.SwapMemory(ctx); err == nil {
		b.SetScalar("Swap Total", humanize.Bytes(sw.Total)).
			SetScalar("Swap Used", humanize.Bytes(sw.Used)).
			SetScalar("Swap Usage", humanize.Percent(sw.UsedPercent))
	} else {
		errs = append(errs, fmt.Errorf("swap memory: %w", err))
	}

	return finish(measurement.TypeMemory, b, errs)
}
