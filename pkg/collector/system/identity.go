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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/vpsbot/pkg/measurement"
)

const unknown = "Unknown"

// IdentityCollector reports the operating system, architecture, hostname
// and processor of the host.
type IdentityCollector struct {
	Platform Platform
}

// Collect implements collector.Collector.
func (c *IdentityCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting system identity")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := c.Platform.HostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	title := cases.Title(language.English)
	b := measurement.NewSection(measurement.TypeIdentity).
		SetScalar("Operating System", joinNonEmpty(title.String(info.OS), info.KernelVersion)).
		SetScalar("OS Version", joinNonEmpty(title.String(info.Platform), info.PlatformVersion)).
		SetScalar("Architecture", orUnknown(info.KernelArch)).
		SetScalar("Hostname", orUnknown(info.Hostname))

	proc, err := c.Platform.Processor(ctx)
	if err != nil {
		slog.Debug("processor label unavailable", "error", err)
	}
	b.SetScalar("Processor", orUnknown(proc))

	if model, err := c.Platform.ProcessorModel(ctx); err == nil && model != "" {
		b.SetScalar("Processor Model", model)
	} else if err != nil {
		slog.Debug("processor model unavailable", "error", err)
	}

	return b.Build(), nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return unknown
	}
	return strings.Join(kept, " ")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknown
	}
	return s
}
