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
	"time"

	"github.com/mchmarny/vpsbot/pkg/collector/system"
	"github.com/mchmarny/vpsbot/pkg/defaults"
)

// Factory creates the collector for each section type.
type Factory interface {
	CreateIdentityCollector() Collector
	CreateUptimeCollector() Collector
	CreateCPUCollector() Collector
	CreateMemoryCollector() Collector
	CreateDiskCollector() Collector
	CreateNetworkCollector() Collector
	CreateProcessCollector() Collector
	CreateTemperatureCollector() Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithPlatform sets the platform the collectors read from.
func WithPlatform(p system.Platform) Option {
	return func(f *DefaultFactory) {
		f.Platform = p
	}
}

// WithStartTime sets the process start time reported as bot uptime.
func WithStartTime(t time.Time) Option {
	return func(f *DefaultFactory) {
		f.StartTime = t
	}
}

// WithCPUSampleInterval sets how long CPU utilization is sampled.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CPUSampleInterval = d
	}
}

// WithPerCoreCPU enables per-core utilization in the CPU section.
func WithPerCoreCPU(enabled bool) Option {
	return func(f *DefaultFactory) {
		f.PerCoreCPU = enabled
	}
}

// WithTopProcesses sets how many processes the process section lists.
func WithTopProcesses(n int) Option {
	return func(f *DefaultFactory) {
		f.TopProcesses = n
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Platform          system.Platform
	StartTime         time.Time
	CPUSampleInterval time.Duration
	PerCoreCPU        bool
	TopProcesses      int
}

// NewDefaultFactory creates a factory reading the local host. StartTime
// defaults to the moment the factory is created.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Platform:          system.NewHostPlatform(),
		StartTime:         time.Now(),
		CPUSampleInterval: defaults.CPUSampleInterval,
		TopProcesses:      defaults.TopProcesses,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateIdentityCollector creates the system identity collector.
func (f *DefaultFactory) CreateIdentityCollector() Collector {
	return &system.IdentityCollector{Platform: f.Platform}
}

// CreateUptimeCollector creates the uptime collector.
func (f *DefaultFactory) CreateUptimeCollector() Collector {
	return &system.UptimeCollector{Platform: f.Platform, StartTime: f.StartTime}
}

// CreateCPUCollector creates the CPU collector.
func (f *DefaultFactory) CreateCPUCollector() Collector {
	return &system.CPUCollector{
		Platform:       f.Platform,
		SampleInterval: f.CPUSampleInterval,
		PerCore:        f.PerCoreCPU,
	}
}

// CreateMemoryCollector creates the memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &system.MemoryCollector{Platform: f.Platform}
}

// CreateDiskCollector creates the disk collector.
func (f *DefaultFactory) CreateDiskCollector() Collector {
	return &system.DiskCollector{Platform: f.Platform}
}

// CreateNetworkCollector creates the network collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &system.NetworkCollector{Platform: f.Platform}
}

// CreateProcessCollector creates the process collector.
func (f *DefaultFactory) CreateProcessCollector() Collector {
	return &system.ProcessCollector{Platform: f.Platform, Top: f.TopProcesses}
}

// CreateTemperatureCollector creates the temperature collector.
func (f *DefaultFactory) CreateTemperatureCollector() Collector {
	return &system.TemperatureCollector{Platform: f.Platform}
}
