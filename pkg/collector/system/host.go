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
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/mchmarny/vpsbot/pkg/collector/file"
	"github.com/mchmarny/vpsbot/pkg/defaults"
)

const (
	defaultSysCPUPath = "/sys/devices/system/cpu"
	defaultLscpu      = "lscpu"
	keyModelName      = "Model name"
)

// HostPlatform reads the local host through gopsutil, sysfs and lscpu.
type HostPlatform struct {
	// SysCPUPath is the sysfs directory holding cpuN/cpufreq entries.
	SysCPUPath string
	// LscpuCommand is the binary queried for the detailed processor model.
	LscpuCommand string
	// ProcessSampleInterval is how long process CPU usage is measured over.
	ProcessSampleInterval time.Duration

	parser       *file.Parser
	temperatures func(context.Context) ([]sensors.TemperatureStat, error)
	now          func() time.Time
}

// NewHostPlatform returns a Platform backed by the running host.
func NewHostPlatform() *HostPlatform {
	return &HostPlatform{
		SysCPUPath:   defaultSysCPUPath,
		LscpuCommand: defaultLscpu,
		parser:       file.NewParser(),

		ProcessSampleInterval: defaults.ProcessSampleInterval,
	}
}

// HostInfo implements Platform.
func (h *HostPlatform) HostInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

// BootTime implements Platform.
func (h *HostPlatform) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0), nil
}

// Processor implements Platform with the vendor of the first CPU.
func (h *HostPlatform) Processor(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 || infos[0].VendorID == "" {
		return "", fmt.Errorf("no processor vendor reported")
	}
	return infos[0].VendorID, nil
}

// ProcessorModel implements Platform by parsing the "Model name" line of lscpu.
func (h *HostPlatform) ProcessorModel(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, h.LscpuCommand).Output()
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", h.LscpuCommand, err)
	}
	return parseModelName(string(out))
}

func parseModelName(out string) (string, error) {
	fields, err := file.NewParser(
		file.WithKVDelimiter(":"),
		file.WithSkipEmptyValues(true),
	).ParseMap(out)
	if err != nil {
		return "", err
	}
	model, ok := fields[keyModelName]
	if !ok {
		return "", fmt.Errorf("%q not found in lscpu output", keyModelName)
	}
	return model, nil
}

// CPUPercent implements Platform.
func (h *HostPlatform) CPUPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, perCPU)
}

// CPUCounts implements Platform.
func (h *HostPlatform) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

// CPUFrequency implements Platform. Current is averaged over all cores that
// expose cpufreq; min and max span all of them. Without cpufreq the current
// clock falls back to the value in /proc/cpuinfo.
func (h *HostPlatform) CPUFrequency(ctx context.Context) (*Frequency, error) {
	dirs, _ := filepath.Glob(filepath.Join(h.SysCPUPath, "cpu[0-9]*", "cpufreq"))

	var f Frequency
	var sum float64
	var n int
	for _, dir := range dirs {
		cur, err := h.readKHz(filepath.Join(dir, "scaling_cur_freq"))
		if err != nil {
			slog.Debug("cpufreq not readable", "path", dir, "error", err)
			continue
		}
		sum += cur
		n++
		if v, err := h.readKHz(filepath.Join(dir, "cpuinfo_min_freq")); err == nil && (f.Min == 0 || v < f.Min) {
			f.Min = v
		}
		if v, err := h.readKHz(filepath.Join(dir, "cpuinfo_max_freq")); err == nil && v > f.Max {
			f.Max = v
		}
	}
	if n > 0 {
		f.Current = sum / float64(n)
		return &f, nil
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 || infos[0].Mhz == 0 {
		return nil, nil
	}
	return &Frequency{Current: infos[0].Mhz}, nil
}

// readKHz reads a sysfs frequency file (kHz) and returns MHz.
func (h *HostPlatform) readKHz(path string) (float64, error) {
	s, err := h.parser.GetFirst(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency in %s: %w", path, err)
	}
	return v / 1000, nil
}

// VirtualMemory implements Platform.
func (h *HostPlatform) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

// SwapMemory implements Platform.
func (h *HostPlatform) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

// Partitions implements Platform with physical partitions only.
func (h *HostPlatform) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

// DiskUsage implements Platform.
func (h *HostPlatform) DiskUsage(ctx context.Context, mountpoint string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, mountpoint)
}

// DiskIO implements Platform.
func (h *HostPlatform) DiskIO(ctx context.Context) (*DiskIO, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(counters) == 0 {
		return nil, nil
	}
	var io DiskIO
	for _, c := range counters {
		io.ReadBytes += c.ReadBytes
		io.WriteBytes += c.WriteBytes
	}
	return &io, nil
}

// NetIO implements Platform.
func (h *HostPlatform) NetIO(ctx context.Context) (*NetIO, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(counters) == 0 {
		return nil, fmt.Errorf("no network counters reported")
	}
	return &NetIO{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}

// Interfaces implements Platform.
func (h *HostPlatform) Interfaces(ctx context.Context) ([]Interface, error) {
	list, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(list))
	for _, i := range list {
		addrs := make([]string, 0, len(i.Addrs))
		for _, a := range i.Addrs {
			addrs = append(addrs, a.Addr)
		}
		out = append(out, Interface{Name: i.Name, Addrs: addrs})
	}
	return out, nil
}

// Processes implements Platform. CPU usage is measured across
// ProcessSampleInterval from two readings of each process's cumulative
// user and system time. Processes that exit or deny inspection while being
// sampled keep their slot with whatever fields were readable.
func (h *HostPlatform) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]processRef, 0, len(procs))
	for _, p := range procs {
		refs = append(refs, processRef{pid: p.Pid, handle: p})
	}
	return sampleProcesses(ctx, refs, h.ProcessSampleInterval, h.now)
}

// processHandle is the subset of *process.Process read while sampling.
type processHandle interface {
	NameWithContext(ctx context.Context) (string, error)
	TimesWithContext(ctx context.Context) (*cpu.TimesStat, error)
	MemoryPercentWithContext(ctx context.Context) (float32, error)
}

type processRef struct {
	pid    int32
	handle processHandle
}

// sampleProcesses reads busy time twice, interval apart, and reports the
// share of one CPU each process used in between. A process whose second
// reading fails reports 0% CPU.
func sampleProcesses(ctx context.Context, refs []processRef, interval time.Duration, now func() time.Time) ([]Process, error) {
	if now == nil {
		now = time.Now
	}

	before := make([]float64, len(refs))
	seen := make([]bool, len(refs))
	for i, r := range refs {
		if t, err := r.handle.TimesWithContext(ctx); err == nil && t != nil {
			before[i] = t.User + t.System
			seen[i] = true
		}
	}
	start := now()

	if interval > 0 {
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	elapsed := now().Sub(start).Seconds()
	out := make([]Process, 0, len(refs))
	for i, r := range refs {
		s := Process{PID: r.pid}
		if name, err := r.handle.NameWithContext(ctx); err == nil {
			s.Name = name
		}
		if t, err := r.handle.TimesWithContext(ctx); err == nil && t != nil && seen[i] && elapsed > 0 {
			if busy := t.User + t.System - before[i]; busy > 0 {
				s.CPUPercent = busy / elapsed * 100
			}
		}
		if m, err := r.handle.MemoryPercentWithContext(ctx); err == nil {
			s.MemPercent = float64(m)
		}
		out = append(out, s)
	}
	return out, nil
}

// Temperatures implements Platform.
func (h *HostPlatform) Temperatures(ctx context.Context) ([]Sensor, error) {
	read := h.temperatures
	if read == nil {
		read = sensors.TemperaturesWithContext
	}
	temps, err := read(ctx)
	if err != nil && len(temps) == 0 {
		return nil, err
	}
	out := make([]Sensor, 0, len(temps))
	for _, t := range temps {
		name, label := splitSensorKey(t.SensorKey)
		out = append(out, Sensor{Name: name, Label: label, Celsius: t.Temperature})
	}
	return out, nil
}

// sensorLabelPrefixes are the leading words of hwmon input labels. gopsutil
// lowercases a label, joins its words with underscores and appends it to the
// chip name, so the chip/label boundary is found by the label's first word.
var sensorLabelPrefixes = []string{
	"package_id", "core", "composite", "sensor", "temp", "tctl", "tdie",
	"tccd", "edge", "junction", "mem", "cpu", "gpu", "soc", "ambient",
	"physical_id", "sodimm", "loc",
}

// splitSensorKey separates a gopsutil sensor key into chip name and label.
// Keys without a recognized label are treated as a bare chip name, so chip
// names that contain underscores stay whole. Label case is lost upstream;
// only the first letter is restored.
func splitSensorKey(key string) (name, label string) {
	for i := 0; i < len(key); i++ {
		if key[i] != '_' || i == 0 {
			continue
		}
		rest := key[i+1:]
		for _, p := range sensorLabelPrefixes {
			if rest == p || strings.HasPrefix(rest, p+"_") || hasNumericSuffix(rest, p) {
				return key[:i], sentenceCase(strings.ReplaceAll(rest, "_", " "))
			}
		}
	}
	return key, ""
}

// hasNumericSuffix reports whether s is prefix immediately followed by digits,
// as in "temp1" or "core0".
func hasNumericSuffix(s, prefix string) bool {
	digits, ok := strings.CutPrefix(s, prefix)
	if !ok || digits == "" {
		return false
	}
	_, err := strconv.Atoi(digits)
	return err == nil
}

func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
