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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTypesOrder(t *testing.T) {
	want := []Type{
		TypeIdentity, TypeUptime, TypeCPU, TypeMemory,
		TypeDisk, TypeNetwork, TypeProcesses, TypeTemperature,
	}
	assert.Equal(t, want, Types)
	for _, mt := range Types {
		assert.NotEmpty(t, mt.Title())
		assert.NotEmpty(t, mt.Icon())
	}
	assert.Equal(t, "gpu", Type("gpu").Title())
}

func TestParseType(t *testing.T) {
	mt, ok := ParseType("disk")
	assert.True(t, ok)
	assert.Equal(t, TypeDisk, mt)

	_, ok = ParseType("Disk")
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	assert.False(t, Scalar("53.2%").IsMultiline())
	assert.True(t, Multiline("a").IsMultiline())
	assert.True(t, Scalar("a\nb").IsMultiline())
	assert.Equal(t, "8 MHz", Scalarf("%d MHz", 8).String())
}

func TestSectionAccessors(t *testing.T) {
	var nilSection *Section
	assert.True(t, nilSection.IsEmpty())
	assert.Nil(t, nilSection.Labels())
	_, ok := nilSection.Get("x")
	assert.False(t, ok)

	s := NewSection(TypeMemory).
		SetScalar("Total Memory", "7.75 GB").
		SetScalar("Used Memory", "1.20 GB").
		Build()

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Total Memory", "Used Memory"}, s.Labels())

	v, ok := s.Get("Used Memory")
	require.True(t, ok)
	assert.Equal(t, "1.20 GB", v.Text)
}

func TestSectionSerialization(t *testing.T) {
	s := NewSection(TypeProcesses).
		SetScalar("Total Processes", "112").
		SetMultiline("Top Processes (CPU)", " - `a` CPU: 1.0%, RAM: 0.1%").
		Build()

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "processes",
		"title": "Process Information",
		"entries": [
			{"label": "Total Processes", "value": {"kind": "scalar", "text": "112"}},
			{"label": "Top Processes (CPU)", "value": {"kind": "multiline", "text": " - `+"`a`"+` CPU: 1.0%, RAM: 0.1%"}}
		]
	}`, string(data))

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	var back Section
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *s, back)
}
