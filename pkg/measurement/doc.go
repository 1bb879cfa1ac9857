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

// Package measurement defines the data model shared by collectors and the
// report renderer.
//
// A Section is a titled, ordered list of entries produced by one collector.
// Each entry value is already formatted text, tagged either as a Scalar
// (rendered inline) or Multiline (rendered as a block under its label):
//
//	s := measurement.NewSection(measurement.TypeMemory).
//	    SetScalar("Total Memory", humanize.Bytes(vm.Total)).
//	    SetScalarf("Memory Usage", "%.1f%%", vm.UsedPercent).
//	    Build()
//
// Types lists every section type in the fixed order used by reports.
// Sections serialize to JSON and YAML with entries kept as a list, so the
// display order survives round trips.
//
// FilterOut and FilterIn drop or keep entries by label using wildcard
// patterns such as "Interface docker*".
package measurement
