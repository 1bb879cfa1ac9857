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
	"errors"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// Platform is the read-only view of the host that collectors query.
// HostPlatform implements it with gopsutil; tests substitute fakes.
type Platform interface {
	HostInfo(ctx context.Context) (*host.InfoStat, error)
	BootTime(ctx context.Context) (time.Time, error)

	// Processor returns a short processor label, ProcessorModel the detailed
	// model string reported by the OS.
	Processor(ctx context.Context) (string, error)
	ProcessorModel(ctx context.Context) (string, error)

	// CPUPercent blocks for interval and returns one value, or one per core
	// when perCPU is set.
	CPUPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error)
	CPUCounts(ctx context.Context, logical bool) (int, error)
	// CPUFrequency returns nil without error when frequency is not exposed.
	CPUFrequency(ctx context.Context) (*Frequency, error)

	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)

	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, mountpoint string) (*disk.UsageStat, error)
	// DiskIO returns nil without error when I/O accounting is not exposed.
	DiskIO(ctx context.Context) (*DiskIO, error)

	NetIO(ctx context.Context) (*NetIO, error)
	Interfaces(ctx context.Context) ([]Interface, error)

	Processes(ctx context.Context) ([]Process, error)

	Temperatures(ctx context.Context) ([]Sensor, error)
}

// Frequency is the CPU clock in MHz.
type Frequency struct {
	Current float64
	Min     float64
	Max     float64
}

// DiskIO holds cumulative block device counters summed over all disks.
type DiskIO struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// NetIO holds cumulative network counters summed over all interfaces.
type NetIO struct {
	BytesSent uint64
	BytesRecv uint64
}

// Interface is a network interface and its addresses in CIDR notation.
type Interface struct {
	Name  string
	Addrs []string
}

// Process is one sample of a running process. Name is empty when the
// process could not be inspected.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float64
}

// Sensor is one temperature reading. Label is empty when the chip does not
// name the input.
type Sensor struct {
	Name    string
	Label   string
	Celsius float64
}

// finish builds the section, or returns the joined errors when every
// sub-item failed.
func finish(t measurement.Type, b *measurement.SectionBuilder, errs []error) (*measurement.Section, error) {
	if b.Len() == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	for _, err := range errs {
		slog.Debug("sub-item unavailable", "collector", t, "error", err)
	}
	return b.Build(), nil
}
