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

package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/vpsbot/pkg/defaults"
)

func runeLens(parts []string) []int {
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		out = append(out, utf8.RuneCountInString(p))
	}
	return out
}

func TestSplitPositionalScenario(t *testing.T) {
	text := strings.Repeat("abcdefghi\n", 900)
	require.Len(t, text, 9000)

	parts := SplitPositional(text, defaults.MaxMessageLength)
	assert.Equal(t, []int{4096, 4096, 808}, runeLens(parts))
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitPositionalProperties(t *testing.T) {
	texts := []string{
		"",
		"a",
		strings.Repeat("x", 10),
		strings.Repeat("x", 11),
		strings.Repeat("line\n", 37),
		strings.Repeat("🖥️ *System*\n - *ключ:* `значение`\n", 50),
	}
	for _, text := range texts {
		for _, l := range []int{1, 3, 10, 64, 4096} {
			parts := SplitPositional(text, l)
			require.NotEmpty(t, parts)
			assert.Equal(t, text, strings.Join(parts, ""))

			n := utf8.RuneCountInString(text)
			if n <= l {
				assert.Equal(t, []string{text}, parts)
				continue
			}
			lens := runeLens(parts)
			for _, got := range lens[:len(lens)-1] {
				assert.Equal(t, l, got)
			}
			last := lens[len(lens)-1]
			assert.GreaterOrEqual(t, last, 1)
			assert.LessOrEqual(t, last, l)
			for _, p := range parts {
				assert.True(t, utf8.ValidString(p))
			}
		}
	}
}

func TestSplitPositionalExact(t *testing.T) {
	assert.Equal(t, []string{"abcd"}, SplitPositional("abcd", 4))
	assert.Equal(t, []string{"abc", "d"}, SplitPositional("abcd", 3))
	assert.Equal(t, []string{"ab", "cd"}, SplitPositional("abcd", 2))
	assert.Equal(t, []string{"абв", "г"}, SplitPositional("абвг", 3))
	assert.Equal(t, []string{"abcd"}, SplitPositional("abcd", 0))
}

func TestSplitLines(t *testing.T) {
	text := "aaa\nbbb\ncc\nd"
	parts := SplitLines(text, 8)
	assert.Equal(t, []string{"aaa\nbbb\n", "cc\nd"}, parts)
	assert.Equal(t, text, strings.Join(parts, ""))

	assert.Equal(t, []string{"abcdef", "ghij"}, SplitLines("abcdefghij", 6))
	assert.Equal(t, []string{"ab\n", "cdefg", "h"}, SplitLines("ab\ncdefgh", 5))
	assert.Equal(t, []string{"short"}, SplitLines("short", 10))
}

func TestSplitLinesProperties(t *testing.T) {
	text := strings.Repeat(" - *Interface eth0:* `IP: 10.0.0.2`\n", 300)
	parts := SplitLines(text, defaults.MaxMessageLength)
	require.Greater(t, len(parts), 1)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), defaults.MaxMessageLength)
		assert.True(t, strings.HasSuffix(p, "\n"))
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModePositional, m)

	m, err = ParseMode("Lines")
	require.NoError(t, err)
	assert.Equal(t, ModeLines, m)

	_, err = ParseMode("words")
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	text := "ab\ncdef"
	assert.Equal(t, SplitPositional(text, 4), For(ModePositional)(text, 4))
	assert.Equal(t, SplitLines(text, 4), For(ModeLines)(text, 4))
}
