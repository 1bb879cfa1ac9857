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

package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/vpsbot/pkg/collector"
	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/header"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// SystemAssembler runs every collector in report order and keeps the
// sections that came back with entries. A collector that errors, panics or
// exceeds its timeout loses its section; the rest of the report is kept.
type SystemAssembler struct {
	// Version is stamped into the report metadata.
	Version string

	// Host names the report. If empty, the OS hostname is used.
	Host string

	// Factory creates the collectors when Sources is nil. If both are nil,
	// the default factory is used.
	Factory collector.Factory

	// Sources overrides the collectors and their order.
	Sources []collector.Source

	// Parallel runs collectors concurrently. Output order is unaffected.
	Parallel bool

	// CollectorTimeout bounds each collector. Zero means defaults.CollectorTimeout.
	CollectorTimeout time.Duration

	// Include keeps only entries whose label matches one of these wildcard
	// patterns. Empty keeps everything.
	Include []string

	// Exclude drops entries whose label matches one of these wildcard patterns.
	Exclude []string

	// Sections limits the collectors run to these types. Empty runs all.
	Sections []measurement.Type

	// Now defaults to time.Now.
	Now func() time.Time
}

// Assemble implements Assembler.
func (a *SystemAssembler) Assemble(ctx context.Context) *Report {
	start := time.Now()
	defer func() {
		assemblyDuration.Observe(time.Since(start).Seconds())
	}()

	sources := a.sources()
	slog.Debug("assembling report", slog.Int("sources", len(sources)), slog.Bool("parallel", a.Parallel))

	results := make([]*measurement.Section, len(sources))
	if a.Parallel {
		// Each goroutine owns one slot of results, so no locking is needed.
		g, gctx := errgroup.WithContext(ctx)
		for i, src := range sources {
			g.Go(func() error {
				results[i] = a.collect(gctx, src)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, src := range sources {
			results[i] = a.collect(ctx, src)
		}
	}

	r := NewReport(a.host())
	r.Init(header.KindReport, header.APIVersion, a.Version, a.now())
	r.Metadata["host"] = r.Host

	for _, s := range results {
		if len(a.Include) > 0 {
			s = s.FilterIn(a.Include)
		}
		if len(a.Exclude) > 0 {
			s = s.FilterOut(a.Exclude)
		}
		if s.IsEmpty() {
			continue
		}
		r.Sections = append(r.Sections, s)
	}

	reportSections.Set(float64(len(r.Sections)))
	slog.Debug("report assembled", slog.Int("sections", len(r.Sections)))

	return r
}

// collect runs one collector, converting every failure into a nil section.
func (a *SystemAssembler) collect(ctx context.Context, src collector.Source) (section *measurement.Section) {
	name := src.Type.String()
	start := time.Now()
	defer func() {
		collectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	defer func() {
		if p := recover(); p != nil {
			collectorFailures.WithLabelValues(name).Inc()
			slog.Error("collector panicked", slog.String("collector", name), slog.String("panic", fmt.Sprint(p)))
			section = nil
		}
	}()

	if src.Collector == nil {
		return nil
	}

	timeout := a.CollectorTimeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s, err := src.Collector.Collect(cctx)
	if err != nil {
		collectorFailures.WithLabelValues(name).Inc()
		slog.Warn("collector failed, omitting section", slog.String("collector", name), slog.String("error", err.Error()))
		return nil
	}
	return s
}

func (a *SystemAssembler) sources() []collector.Source {
	all := a.Sources
	if all == nil {
		f := a.Factory
		if f == nil {
			f = collector.NewDefaultFactory()
		}
		all = collector.Sources(f)
	}
	if len(a.Sections) == 0 {
		return all
	}
	out := make([]collector.Source, 0, len(a.Sections))
	for _, src := range all {
		if slices.Contains(a.Sections, src.Type) {
			out = append(out, src)
		}
	}
	return out
}

func (a *SystemAssembler) host() string {
	if a.Host != "" {
		return a.Host
	}
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "unknown"
	}
	return h
}

func (a *SystemAssembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
