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

// Package collector defines how report sections are gathered.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context) (*measurement.Section, error)
//	}
//
// A collector returns an error only when its whole category is unavailable.
// Sub-items that fail are left out of the section instead.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so tests can inject
// fakes. DefaultFactory builds the collectors from pkg/collector/system
// on top of a Platform:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithStartTime(start),
//	    collector.WithPerCoreCPU(true),
//	)
//	for _, src := range collector.Sources(factory) {
//	    section, err := src.Collector.Collect(ctx)
//	    ...
//	}
//
// Sources returns collectors in the fixed report order defined by
// measurement.Types.
package collector
