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

// Package defaults provides centralized configuration constants for vpsbot.
//
// This package defines timeout values, limits, and other configuration
// defaults used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Collector timings: CPU sampling interval and collection budgets
//   - Report limits: message ceiling and process list size
//   - Transport timings: send timeout, long-poll timeout, send rate
//   - Server timeouts: for the optional metrics/health HTTP server
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/vpsbot/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// The CPU sample interval must stay well below the collector timeout, and
// the collector timeout below the report timeout, so a single slow source
// is cut off before it can stall a whole report.
package defaults
