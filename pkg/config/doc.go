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

// Package config loads and validates the bot configuration.
//
// Configuration is read from an optional YAML file:
//
//	token: "123456:ABC..."
//	adminID: 1689039862
//	splitMode: positional   # or "lines"
//	cpuSampleInterval: 1s
//	topProcesses: 5
//	perCoreCPU: false
//	parallel: false
//	excludeEntries: ["Interface docker*", "Interface veth*"]
//	includeEntries: []          # keep only matching labels when set
//	sections: []                # e.g. ["cpu", "memory"]; empty collects all
//	sendRate: 1
//	sendBurst: 3
//	metricsAddress: ":9090"
//
// CLI flags and VPSBOT_* environment variables override file values.
// Validate reports a missing token or admin id as ErrCodeConfigMissing,
// which is fatal at startup.
package config
