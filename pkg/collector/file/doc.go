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

// Package file parses line and key-value oriented text, read either from
// the filesystem (/proc, /sys, /etc) or from captured command output.
//
// Read a single-value sysfs file:
//
//	p := file.NewParser()
//	khz, err := p.GetFirst("/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq")
//
// Parse "Key: value" command output:
//
//	p := file.NewParser(file.WithKVDelimiter(":"))
//	fields, err := p.ParseMap(string(lscpuOutput))
//	model := fields["Model name"]
//
// Errors are wrapped with the path that failed. Files larger than the
// configured maximum size (1MB by default) or containing invalid UTF-8 are
// rejected.
package file
