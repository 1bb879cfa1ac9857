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

package collector

import (
	"context"

	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// Collector produces one report section.
type Collector interface {
	Collect(ctx context.Context) (*measurement.Section, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(ctx context.Context) (*measurement.Section, error)

// Collect implements Collector.
func (f CollectorFunc) Collect(ctx context.Context) (*measurement.Section, error) {
	return f(ctx)
}

// Source pairs a collector with the section type it produces.
type Source struct {
	Type      measurement.Type
	Collector Collector
}

// Sources returns one source per section type, in report order.
func Sources(f Factory) []Source {
	return []Source{
		{Type: measurement.TypeIdentity, Collector: f.CreateIdentityCollector()},
		{Type: measurement.TypeUptime, Collector: f.CreateUptimeCollector()},
		{Type: measurement.TypeCPU, Collector: f.CreateCPUCollector()},
		{Type: measurement.TypeMemory, Collector: f.CreateMemoryCollector()},
		{Type: measurement.TypeDisk, Collector: f.CreateDiskCollector()},
		{Type: measurement.TypeNetwork, Collector: f.CreateNetworkCollector()},
		{Type: measurement.TypeProcesses, Collector: f.CreateProcessCollector()},
		{Type: measurement.TypeTemperature, Collector: f.CreateTemperatureCollector()},
	}
}
