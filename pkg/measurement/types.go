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

package measurement

import (
	"fmt"
	"strings"
)

// Type represents the category of a report section.
type Type string

// String returns the string representation of the measurement Type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeIdentity    Type = "identity"
	TypeUptime      Type = "uptime"
	TypeCPU         Type = "cpu"
	TypeMemory      Type = "memory"
	TypeDisk        Type = "disk"
	TypeNetwork     Type = "network"
	TypeProcesses   Type = "processes"
	TypeTemperature Type = "temperature"
)

// Types lists every section type in report order. The order is fixed and
// never depends on collected data.
var Types = []Type{
	TypeIdentity,
	TypeUptime,
	TypeCPU,
	TypeMemory,
	TypeDisk,
	TypeNetwork,
	TypeProcesses,
	TypeTemperature,
}

var titles = map[Type]string{
	TypeIdentity:    "System Information",
	TypeUptime:      "Uptime Information",
	TypeCPU:         "CPU Information",
	TypeMemory:      "Memory Information",
	TypeDisk:        "Disk Information",
	TypeNetwork:     "Network Information",
	TypeProcesses:   "Process Information",
	TypeTemperature: "Temperatures",
}

var icons = map[Type]string{
	TypeIdentity:    "🖥️",
	TypeUptime:      "⏰",
	TypeCPU:         "💻",
	TypeMemory:      "🧠",
	TypeDisk:        "💾",
	TypeNetwork:     "🌐",
	TypeProcesses:   "⚙️",
	TypeTemperature: "🌡️",
}

// Title returns the fixed human-readable title of the section type.
func (mt Type) Title() string {
	if t, ok := titles[mt]; ok {
		return t
	}
	return string(mt)
}

// Icon returns the emoji shown in front of the section title.
func (mt Type) Icon() string {
	return icons[mt]
}

// ParseType parses a string into a measurement Type.
// Returns the Type and true if parsing succeeds, or empty Type and false if the string is invalid.
func ParseType(s string) (Type, bool) {
	for _, mt := range Types {
		if string(mt) == s {
			return mt, true
		}
	}
	return "", false
}

// Kind tags a Value as a single line or a pre-formatted block.
type Kind string

const (
	KindScalar    Kind = "scalar"
	KindMultiline Kind = "multiline"
)

// Value is an already formatted entry value. Sources format at collection
// time; renderers never convert numbers.
type Value struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// Scalar returns a single-line value.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Text: s}
}

// Scalarf formats a single-line value.
func Scalarf(format string, args ...any) Value {
	return Scalar(fmt.Sprintf(format, args...))
}

// Multiline returns a block value rendered below its label.
func Multiline(s string) Value {
	return Value{Kind: KindMultiline, Text: s}
}

// IsMultiline reports whether the value renders as a block. A scalar whose
// text contains a line break is treated as a block too.
func (v Value) IsMultiline() bool {
	return v.Kind == KindMultiline || strings.Contains(v.Text, "\n")
}

// String returns the value text.
func (v Value) String() string {
	return v.Text
}

// Entry is one labelled value of a section.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	Value Value  `json:"value" yaml:"value"`
}

// Section is a titled group of entries. Entry order is display order.
type Section struct {
	Type    Type    `json:"type" yaml:"type"`
	Title   string  `json:"title" yaml:"title"`
	Entries []Entry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Len returns the number of entries.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// IsEmpty reports whether the section has nothing to render.
func (s *Section) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the value stored under label.
func (s *Section) Get(label string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	for _, e := range s.Entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Labels returns entry labels in display order.
func (s *Section) Labels() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.Label)
	}
	return out
}
