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
	"context"

	"github.com/mchmarny/vpsbot/pkg/header"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// Assembler builds a fresh report on every call. Failing sources never
// surface; they only shorten the report.
type Assembler interface {
	Assemble(ctx context.Context) *Report
}

// NewReport creates a new Report for host with an initialized Sections slice.
func NewReport(host string) *Report {
	return &Report{
		Host:     host,
		Sections: make([]*measurement.Section, 0, len(measurement.Types)),
	}
}

// Report is one assembled host status document. It is not modified after
// Assemble returns.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Host is the host name shown in the report header line.
	Host string `json:"host" yaml:"host"`

	// Sections holds the non-empty sections in report order.
	Sections []*measurement.Section `json:"sections" yaml:"sections"`
}

// Section returns the section of type t, or nil when it was omitted.
func (r *Report) Section(t measurement.Type) *measurement.Section {
	for _, s := range r.Sections {
		if s.Type == t {
			return s
		}
	}
	return nil
}

// Types returns the section types present in the report, in order.
func (r *Report) Types() []measurement.Type {
	out := make([]measurement.Type, 0, len(r.Sections))
	for _, s := range r.Sections {
		out = append(out, s.Type)
	}
	return out
}
