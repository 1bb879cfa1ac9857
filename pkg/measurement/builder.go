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

// SectionBuilder provides a fluent API for building Section instances.
// Setting an existing label replaces its value in place, so the first
// insertion decides the display position.
type SectionBuilder struct {
	sectionType Type
	entries     []Entry
	index       map[string]int
}

// NewSection creates a new SectionBuilder for the given type.
func NewSection(t Type) *SectionBuilder {
	return &SectionBuilder{
		sectionType: t,
		entries:     make([]Entry, 0),
		index:       make(map[string]int),
	}
}

// Set adds or updates an entry.
func (b *SectionBuilder) Set(label string, value Value) *SectionBuilder {
	if i, ok := b.index[label]; ok {
		b.entries[i].Value = value
		return b
	}
	b.index[label] = len(b.entries)
	b.entries = append(b.entries, Entry{Label: label, Value: value})
	return b
}

// SetScalar is a convenience method for adding single-line values.
func (b *SectionBuilder) SetScalar(label, value string) *SectionBuilder {
	return b.Set(label, Scalar(value))
}

// SetScalarf is a convenience method for adding formatted single-line values.
func (b *SectionBuilder) SetScalarf(label, format string, args ...any) *SectionBuilder {
	return b.Set(label, Scalarf(format, args...))
}

// SetMultiline is a convenience method for adding block values.
func (b *SectionBuilder) SetMultiline(label, value string) *SectionBuilder {
	return b.Set(label, Multiline(value))
}

// Len returns the number of entries added so far.
func (b *SectionBuilder) Len() int {
	return len(b.entries)
}

// Build constructs and returns the Section.
func (b *SectionBuilder) Build() *Section {
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	return &Section{
		Type:    b.sectionType,
		Title:   b.sectionType.Title(),
		Entries: entries,
	}
}
