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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/vpsbot/pkg/collector"
	"github.com/mchmarny/vpsbot/pkg/header"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

var fixedNow = time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)

// fullSection returns a non-empty section with two entries for t.
func fullSection(t measurement.Type) *measurement.Section {
	return measurement.NewSection(t).
		SetScalar(t.Title()+" A", "1").
		SetScalar(t.Title()+" B", "2").
		Build()
}

func staticCollector(s *measurement.Section) collector.Collector {
	return collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
		return s, nil
	})
}

// fullSources returns a source per type; overrides replace single collectors.
func fullSources(overrides map[measurement.Type]collector.Collector) []collector.Source {
	out := make([]collector.Source, 0, len(measurement.Types))
	for _, t := range measurement.Types {
		c, ok := overrides[t]
		if !ok {
			c = staticCollector(fullSection(t))
		}
		out = append(out, collector.Source{Type: t, Collector: c})
	}
	return out
}

func newAssembler(sources []collector.Source) *SystemAssembler {
	return &SystemAssembler{
		Version: "v0.0.1",
		Host:    "vps-1",
		Sources: sources,
		Now:     func() time.Time { return fixedNow },
	}
}

// titlePositions returns the index of each section title in text, or -1.
func titlePositions(text string) []int {
	out := make([]int, 0, len(measurement.Types))
	for _, t := range measurement.Types {
		out = append(out, strings.Index(text, TitleLine(t)))
	}
	return out
}

func TestAssembleAllSections(t *testing.T) {
	r := newAssembler(fullSources(nil)).Assemble(context.Background())

	assert.Equal(t, measurement.Types, r.Types())
	text := r.Render()

	pos := titlePositions(text)
	for i, p := range pos {
		require.GreaterOrEqual(t, p, 0, "missing title for %s", measurement.Types[i])
		if i > 0 {
			assert.Greater(t, p, pos[i-1], "%s out of order", measurement.Types[i])
		}
	}
}

func TestAssembleSkipsEmptySections(t *testing.T) {
	empty := func(mt measurement.Type) collector.Collector {
		return staticCollector(measurement.NewSection(mt).Build())
	}
	r := newAssembler(fullSources(map[measurement.Type]collector.Collector{
		measurement.TypeTemperature: empty(measurement.TypeTemperature),
		measurement.TypeDisk:        empty(measurement.TypeDisk),
	})).Assemble(context.Background())

	want := []measurement.Type{
		measurement.TypeIdentity, measurement.TypeUptime, measurement.TypeCPU,
		measurement.TypeMemory, measurement.TypeNetwork, measurement.TypeProcesses,
	}
	assert.Equal(t, want, r.Types())

	text := r.Render()
	assert.NotContains(t, text, measurement.TypeTemperature.Title())
	assert.NotContains(t, text, measurement.TypeDisk.Title())

	last := -1
	for _, mt := range want {
		p := strings.Index(text, TitleLine(mt))
		require.Greater(t, p, last)
		last = p
	}
}

func TestAssembleToleratesFailingCollector(t *testing.T) {
	tests := []struct {
		name string
		c    collector.Collector
	}{
		{"error", collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
			return nil, errors.New("permission denied")
		})},
		{"panic", collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
			panic("sensor driver exploded")
		})},
		{"nil section", collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
			return nil, nil
		})},
		{"nil collector", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, parallel := range []bool{false, true} {
				a := newAssembler(fullSources(map[measurement.Type]collector.Collector{
					measurement.TypeCPU: tt.c,
				}))
				a.Parallel = parallel

				var r *Report
				require.NotPanics(t, func() { r = a.Assemble(context.Background()) })
				assert.Len(t, r.Sections, 7)
				assert.Nil(t, r.Section(measurement.TypeCPU))
				assert.NotContains(t, r.Render(), TitleLine(measurement.TypeCPU))
			}
		})
	}
}

func TestAssembleCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(collectorFailures.WithLabelValues("memory"))

	failing := collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
		return nil, errors.New("boom")
	})
	newAssembler(fullSources(map[measurement.Type]collector.Collector{
		measurement.TypeMemory: failing,
	})).Assemble(context.Background())

	assert.Equal(t, before+1, testutil.ToFloat64(collectorFailures.WithLabelValues("memory")))
	assert.Equal(t, float64(7), testutil.ToFloat64(reportSections))
}

func TestAssembleDeterministic(t *testing.T) {
	a := newAssembler(fullSources(nil))
	first := a.Assemble(context.Background()).Render()
	second := a.Assemble(context.Background()).Render()
	assert.Equal(t, first, second)

	a.Parallel = true
	assert.Equal(t, first, a.Assemble(context.Background()).Render())
}

func TestAssembleCollectorTimeout(t *testing.T) {
	slow := collector.CollectorFunc(func(ctx context.Context) (*measurement.Section, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	a := newAssembler(fullSources(map[measurement.Type]collector.Collector{
		measurement.TypeProcesses: slow,
	}))
	a.CollectorTimeout = 20 * time.Millisecond

	r := a.Assemble(context.Background())
	assert.Nil(t, r.Section(measurement.TypeProcesses))
	assert.Len(t, r.Sections, 7)
}

func TestAssembleExclude(t *testing.T) {
	a := newAssembler(fullSources(nil))
	a.Exclude = []string{"Network Information *", "Memory Information A"}

	r := a.Assemble(context.Background())
	assert.Nil(t, r.Section(measurement.TypeNetwork))
	assert.Equal(t, []string{"Memory Information B"}, r.Section(measurement.TypeMemory).Labels())
}

func TestAssembleInclude(t *testing.T) {
	a := newAssembler(fullSources(nil))
	a.Include = []string{"Memory Information *", "CPU Information A"}
	a.Exclude = []string{"Memory Information A"}

	r := a.Assemble(context.Background())
	require.Len(t, r.Sections, 2)
	assert.Equal(t, []string{"CPU Information A"}, r.Section(measurement.TypeCPU).Labels())
	assert.Equal(t, []string{"Memory Information B"}, r.Section(measurement.TypeMemory).Labels())
}

func TestAssembleSections(t *testing.T) {
	calls := 0
	counting := collector.CollectorFunc(func(context.Context) (*measurement.Section, error) {
		calls++
		return measurement.NewSection(measurement.TypeDisk).SetScalar("Disk", "x").Build(), nil
	})
	a := newAssembler(fullSources(map[measurement.Type]collector.Collector{
		measurement.TypeDisk: counting,
	}))
	a.Sections = []measurement.Type{measurement.TypeUptime, measurement.TypeIdentity}

	r := a.Assemble(context.Background())
	require.Len(t, r.Sections, 2)
	assert.Equal(t, measurement.TypeIdentity, r.Sections[0].Type)
	assert.Equal(t, measurement.TypeUptime, r.Sections[1].Type)
	assert.Zero(t, calls)
}

func TestAssembleHeader(t *testing.T) {
	r := newAssembler(fullSources(nil)).Assemble(context.Background())
	assert.Equal(t, header.KindReport, r.Kind)
	assert.Equal(t, header.APIVersion, r.APIVersion)
	assert.Equal(t, "2026-05-04T03:02:01Z", r.Metadata["timestamp"])
	assert.Equal(t, "v0.0.1", r.Metadata["version"])
	assert.Equal(t, "vps-1", r.Metadata["host"])
}

func TestAssembleDefaultHost(t *testing.T) {
	a := newAssembler(nil)
	a.Host = ""
	a.Sources = []collector.Source{}
	r := a.Assemble(context.Background())
	assert.NotEmpty(t, r.Host)
	assert.Empty(t, r.Sections)
	assert.Equal(t, HeaderLine(r.Host), r.Render())
}
