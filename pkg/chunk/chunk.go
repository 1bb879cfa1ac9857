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

// Package chunk splits rendered reports into messages that fit a transport
// size limit.
package chunk

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects the split strategy.
type Mode string

const (
	// ModePositional cuts at fixed character offsets.
	ModePositional Mode = "positional"
	// ModeLines cuts at line breaks where possible.
	ModeLines Mode = "lines"
)

// ParseMode parses a split mode name. Empty selects ModePositional.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModePositional:
		return ModePositional, nil
	case ModeLines:
		return ModeLines, nil
	default:
		return "", fmt.Errorf("unsupported split mode %q", s)
	}
}

// Split is the function signature shared by the split strategies.
type Split func(text string, maxLen int) []string

// For returns the split function for m.
func For(m Mode) Split {
	if m == ModeLines {
		return SplitLines
	}
	return SplitPositional
}

// SplitPositional cuts text into consecutive pieces of exactly maxLen
// characters; the last piece may be shorter. Lengths are counted in runes,
// so a multi-byte character is never divided, but a line or a Markdown
// span may be. Joining the pieces yields text. Text that fits is returned
// as a single piece, and a non-positive maxLen disables splitting.
func SplitPositional(text string, maxLen int) []string {
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	out := make([]string, 0, utf8.RuneCountInString(text)/maxLen+1)
	start, n := 0, 0
	for i := range text {
		if n == maxLen {
			out = append(out, text[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(out, text[start:])
}

// SplitLines cuts text into pieces of at most maxLen characters, ending each
// piece after the last line break that fits. A single line longer than
// maxLen falls back to positional cuts. Joining the pieces yields text.
func SplitLines(text string, maxLen int) []string {
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var out []string
	rest := text
	for utf8.RuneCountInString(rest) > maxLen {
		head := prefix(rest, maxLen)
		cut := strings.LastIndexByte(head, '\n')
		if cut < 0 {
			cut = len(head)
		} else {
			cut++
		}
		out = append(out, rest[:cut])
		rest = rest[cut:]
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
