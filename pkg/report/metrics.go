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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assemblyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vpsbot_report_assembly_duration_seconds",
			Help:    "Time taken to assemble a complete report",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vpsbot_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"collector"}, // identity, uptime, cpu, memory, disk, network, processes, temperature
	)

	collectorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vpsbot_collector_failures_total",
			Help: "Collectors that returned an error or panicked; their section was omitted",
		},
		[]string{"collector"},
	)

	reportSections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vpsbot_report_sections",
			Help: "Number of sections in the last assembled report",
		},
	)
)
