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
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

var errUnavailable = errors.New("unavailable")

// fakePlatform returns canned values; a non-nil error field makes the
// matching call fail.
type fakePlatform struct {
	info      *host.InfoStat
	infoErr   error
	boot      time.Time
	bootErr   error
	processor string
	model     string
	modelErr  error

	percents    []float64
	percentErr  error
	physical    int
	logical     int
	countErr    error
	freq        *Frequency
	freqErr     error
	lastPerCPU  bool
	lastSampled time.Duration

	vm     *mem.VirtualMemoryStat
	vmErr  error
	swap   *mem.SwapMemoryStat
	swapEr error

	parts     []disk.PartitionStat
	partsErr  error
	usage     map[string]*disk.UsageStat
	diskIO    *DiskIO
	diskIOErr error

	netIO    *NetIO
	netIOErr error
	ifaces   []Interface
	ifaceErr error

	procs    []Process
	procsErr error

	sensors   []Sensor
	sensorErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		info: &host.InfoStat{
			Hostname:        "vps-1",
			OS:              "linux",
			Platform:        "ubuntu",
			PlatformVersion: "22.04",
			KernelVersion:   "6.8.0-31-generic",
			KernelArch:      "x86_64",
		},
		boot:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		processor: "GenuineIntel",
		model:     "Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz",
		percents:  []float64{12.5},
		physical:  2,
		logical:   4,
		freq:      &Frequency{Current: 2400, Min: 1200, Max: 3300},
		vm: &mem.VirtualMemoryStat{
			Total: 8 << 30, Used: 2 << 30, Available: 6 << 30, UsedPercent: 25,
		},
		swap: &mem.SwapMemoryStat{Total: 1 << 30, Used: 0, UsedPercent: 0},
		parts: []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/"},
			{Device: "/dev/sda15", Mountpoint: "/boot/efi"},
			{Device: "/dev/sdb1", Mountpoint: "/data"},
		},
		usage: map[string]*disk.UsageStat{
			"/":     {Total: 40 << 30, Used: 10 << 30, UsedPercent: 25},
			"/data": {Total: 100 << 30, Used: 50 << 30, UsedPercent: 50},
		},
		diskIO: &DiskIO{ReadBytes: 3 << 20, WriteBytes: 5 << 30},
		netIO:  &NetIO{BytesSent: 1 << 30, BytesRecv: 2 << 30},
		ifaces: []Interface{
			{Name: "lo", Addrs: []string{"127.0.0.1/8", "::1/128"}},
			{Name: "eth0", Addrs: []string{"fe80::1/64", "10.0.0.2/24", "10.0.0.3/24"}},
			{Name: "wg0", Addrs: []string{"fd00::2/64"}},
		},
		procs: []Process{
			{PID: 1, Name: "systemd", CPUPercent: 0.1, MemPercent: 0.2},
			{PID: 2, Name: "nginx", CPUPercent: 5, MemPercent: 1.5},
			{PID: 3, Name: "", CPUPercent: 99},
			{PID: 4, Name: "postgres", CPUPercent: 5, MemPercent: 10},
			{PID: 5, Name: "vpsbot", CPUPercent: 1, MemPercent: 0.5},
			{PID: 6, Name: "sshd", CPUPercent: 0, MemPercent: 0.1},
			{PID: 7, Name: "cron", CPUPercent: 0.5, MemPercent: 0.1},
		},
		sensors: []Sensor{
			{Name: "coretemp", Label: "package id 0", Celsius: 45.31},
			{Name: "acpitz", Celsius: 30},
		},
	}
}

func (f *fakePlatform) HostInfo(context.Context) (*host.InfoStat, error) {
	return f.info, f.infoErr
}

func (f *fakePlatform) BootTime(context.Context) (time.Time, error) {
	return f.boot, f.bootErr
}

func (f *fakePlatform) Processor(context.Context) (string, error) {
	return f.processor, nil
}

func (f *fakePlatform) ProcessorModel(context.Context) (string, error) {
	return f.model, f.modelErr
}

func (f *fakePlatform) CPUPercent(_ context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	f.lastPerCPU = perCPU
	f.lastSampled = interval
	return f.percents, f.percentErr
}

func (f *fakePlatform) CPUCounts(_ context.Context, logical bool) (int, error) {
	if logical {
		return f.logical, f.countErr
	}
	return f.physical, f.countErr
}

func (f *fakePlatform) CPUFrequency(context.Context) (*Frequency, error) {
	return f.freq, f.freqErr
}

func (f *fakePlatform) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakePlatform) SwapMemory(context.Context) (*mem.SwapMemoryStat, error) {
	return f.swap, f.swapEr
}

func (f *fakePlatform) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return f.parts, f.partsErr
}

func (f *fakePlatform) DiskUsage(_ context.Context, mountpoint string) (*disk.UsageStat, error) {
	if u, ok := f.usage[mountpoint]; ok {
		return u, nil
	}
	return nil, errUnavailable
}

func (f *fakePlatform) DiskIO(context.Context) (*DiskIO, error) {
	return f.diskIO, f.diskIOErr
}

func (f *fakePlatform) NetIO(context.Context) (*NetIO, error) {
	return f.netIO, f.netIOErr
}

func (f *fakePlatform) Interfaces(context.Context) ([]Interface, error) {
	return f.ifaces, f.ifaceErr
}

func (f *fakePlatform) Processes(context.Context) ([]Process, error) {
	return f.procs, f.procsErr
}

func (f *fakePlatform) Temperatures(context.Context) ([]Sensor, error) {
	return f.sensors, f.sensorErr
}
