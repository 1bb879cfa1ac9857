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

import "strings"

// FilterOut returns a copy of the section without entries whose label matches
// any of the patterns. Order of the remaining entries is preserved.
// Supports wildcard patterns:
//   - "prefix*" matches labels starting with "prefix"
//   - "*suffix" matches labels ending with "suffix"
//   - "*contains*" matches labels containing "contains"
//   - "exact" matches labels exactly
func (s *Section) FilterOut(patterns []string) *Section {
	if s == nil {
		return nil
	}
	out := &Section{Type: s.Type, Title: s.Title, Entries: make([]Entry, 0, len(s.Entries))}
	for _, e := range s.Entries {
		if !matchesAny(e.Label, patterns) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// FilterIn returns a copy of the section with only the entries whose label
// matches one of the patterns. This is the complement of FilterOut.
func (s *Section) FilterIn(patterns []string) *Section {
	if s == nil {
		return nil
	}
	out := &Section{Type: s.Type, Title: s.Title, Entries: make([]Entry, 0, len(s.Entries))}
	for _, e := range s.Entries {
		if matchesAny(e.Label, patterns) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

func matchesAny(label string, patterns []string) bool {
	for _, p := range patterns {
		if matchesPattern(label, p) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a key matches a wildcard pattern.
// Supports multiple wildcard segments, e.g., "a*b*c" matches "aXbYc".
func matchesPattern(key, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	segments := strings.Split(pattern, "*")

	pos := 0
	for i, segment := range segments {
		if segment == "" {
			continue
		}

		if i == 0 {
			if !strings.HasPrefix(key, segment) {
				return false
			}
			pos = len(segment)
			continue
		}

		if i == len(segments)-1 && !strings.HasSuffix(pattern, "*") {
			return strings.HasSuffix(key[pos:], segment)
		}

		idx := strings.Index(key[pos:], segment)
		if idx == -1 {
			return false
		}
		pos += idx + len(segment)
	}

	return true
}
