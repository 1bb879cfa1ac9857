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

// Package system collects host metrics for the report sections: identity,
// uptime, CPU, memory, disk, network, processes and temperature.
//
// Every collector reads the host through the Platform interface.
// HostPlatform is the production implementation built on gopsutil, sysfs and
// lscpu; tests pass a fake.
//
// A collector omits sub-items it cannot read and keeps the rest. It returns
// an error only when nothing at all could be collected; callers treat that
// as an omitted section.
package system
