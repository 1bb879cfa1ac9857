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
	"testing"
	"time"

	"github.com/mchmarny/vpsbot/pkg/collector/system"
	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

func TestNewDefaultFactory(t *testing.T) {
	f := NewDefaultFactory()
	if f.Platform == nil {
		t.Fatal("Expected a platform")
	}
	if f.StartTime.IsZero() {
		t.Error("Expected start time to default to now")
	}
	if f.CPUSampleInterval != defaults.CPUSampleInterval {
		t.Errorf("Expected %v, got %v", defaults.CPUSampleInterval, f.CPUSampleInterval)
	}
	if f.TopProcesses != defaults.TopProcesses {
		t.Errorf("Expected %d, got %d", defaults.TopProcesses, f.TopProcesses)
	}
}

func TestDefaultFactoryOptions(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f := NewDefaultFactory(
		WithStartTime(start),
		WithCPUSampleInterval(250*time.Millisecond),
		WithPerCoreCPU(true),
		WithTopProcesses(3),
	)

	up, ok := f.CreateUptimeCollector().(*system.UptimeCollector)
	if !ok {
		t.Fatal("Expected *system.UptimeCollector")
	}
	if !up.StartTime.Equal(start) {
		t.Errorf("Expected start %v, got %v", start, up.StartTime)
	}

	c, ok := f.CreateCPUCollector().(*system.CPUCollector)
	if !ok {
		t.Fatal("Expected *system.CPUCollector")
	}
	if c.SampleInterval != 250*time.Millisecond || !c.PerCore {
		t.Errorf("Unexpected cpu collector config: %+v", c)
	}

	p, ok := f.CreateProcessCollector().(*system.ProcessCollector)
	if !ok {
		t.Fatal("Expected *system.ProcessCollector")
	}
	if p.Top != 3 {
		t.Errorf("Expected top 3, got %d", p.Top)
	}
}

func TestSourcesOrder(t *testing.T) {
	sources := Sources(NewDefaultFactory())
	if len(sources) != len(measurement.Types) {
		t.Fatalf("Expected %d sources, got %d", len(measurement.Types), len(sources))
	}
	for i, s := range sources {
		if s.Type != measurement.Types[i] {
			t.Errorf("Source %d: expected %s, got %s", i, measurement.Types[i], s.Type)
		}
		if s.Collector == nil {
			t.Errorf("Source %s has nil collector", s.Type)
		}
	}
}

func TestCollectorFunc(t *testing.T) {
	want := measurement.NewSection(measurement.TypeMemory).SetScalar("a", "b").Build()
	c := CollectorFunc(func(context.Context) (*measurement.Section, error) {
		return want, nil
	})
	got, err := c.Collect(context.TODO())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != want {
		t.Error("Expected the returned section")
	}
}
