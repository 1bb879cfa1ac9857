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

// Package report assembles host metrics into a single status report.
//
// SystemAssembler invokes one collector per section type in the fixed order
// of measurement.Types, drops sections without entries and returns a Report.
// A failing collector (error, panic or timeout) only removes its own
// section; Assemble never fails as a whole.
//
//	a := &report.SystemAssembler{Version: version, Factory: factory}
//	r := a.Assemble(ctx)
//	text := r.Render()
//
// Render produces Telegram Markdown:
//
//	📊 *Server Status Report - vps-1*
//
//	🧠 *Memory Information*
//	 - *Total Memory:* `7.75 GB`
//	 - *Top Processes (CPU):*
//	 - `nginx` CPU: 5.0%, RAM: 1.5%
//
// Rendering iterates only ordered slices, so identical inputs always produce
// identical text. Collectors run sequentially unless Parallel is set; the
// output order is the same either way.
//
// Assembly and per-collector durations, collector failures and the section
// count of the last report are exported as Prometheus metrics.
package report
