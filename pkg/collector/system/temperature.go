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
	"log/slog"
	"strings"

	"github.com/mchmarny/vpsbot/pkg/measurement"
)

const defaultSensorLabel = "main"

// sensorLabelReplacer strips characters that open Markdown entities inside
// the bold entry label.
var sensorLabelReplacer = strings.NewReplacer("_", " ", "*", "", "`", "'", "[", "(")

// TemperatureCollector reports every temperature sensor the platform
// exposes. Hosts without sensors yield an empty section.
type TemperatureCollector struct {
	Platform Platform
}

// Collect implements collector.Collector.
func (c *TemperatureCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting temperatures")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := measurement.NewSection(measurement.TypeTemperature)

	sensors, err := c.Platform.Temperatures(ctx)
	if err != nil {
		slog.Debug("temperature sensors unavailable", "error", err)
		return b.Build(), nil
	}

	for _, s := range sensors {
		label := s.Label
		if label == "" {
			label = defaultSensorLabel
		}
		b.SetScalarf(sensorLabelReplacer.Replace(s.Name+" - "+label), "%.1f°C", s.Celsius)
	}

	return b.Build(), nil
}
