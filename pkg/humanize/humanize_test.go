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

package humanize

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0.00 B"},
		{"bytes", 512, "512.00 B"},
		{"just below KB", 1023, "1023.00 B"},
		{"one KB", 1024, "1.00 KB"},
		{"fractional KB", 1536, "1.50 KB"},
		{"one MB", 1 << 20, "1.00 MB"},
		{"one GB", 1 << 30, "1.00 GB"},
		{"one TB", 1 << 40, "1.00 TB"},
		{"rounds up to next unit", 1<<20 - 1, "1.00 MB"},
		{"saturates at TB", 1 << 50, "1024.00 TB"},
		{"far past TB", 3 * (1 << 60), "3145728.00 TB"},
		{"negative", -1, NotAvailable},
		{"nan", math.NaN(), NotAvailable},
		{"inf", math.Inf(1), NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.in))
		})
	}
}

func TestBytesIntegerTypes(t *testing.T) {
	assert.Equal(t, "2.00 GB", Bytes(uint64(2<<30)))
	assert.Equal(t, "4.00 KB", Bytes(int32(4096)))
	assert.Equal(t, NotAvailable, Bytes(int64(-5)))
}

func TestBytesRange(t *testing.T) {
	samples := []uint64{0, 1, 999, 1024, 4095, 1 << 21, 7 << 33, 1<<40 - 1, 1 << 40, 5 << 41}
	for _, n := range samples {
		got := Bytes(n)
		fields := strings.Fields(got)
		require.Len(t, fields, 2, got)

		assert.Contains(t, byteUnits, fields[1])
		v, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		if fields[1] != "TB" {
			assert.Less(t, v, 1024.0, got)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0:00:00"},
		{"sub-second floors", 999 * time.Millisecond, "0:00:00"},
		{"seconds", 42*time.Second + 700*time.Millisecond, "0:00:42"},
		{"minutes", 5*time.Minute + 3*time.Second, "0:05:03"},
		{"hours", 13*time.Hour + 7*time.Minute, "13:07:00"},
		{"one day", 25*time.Hour + time.Second, "1 day, 1:00:01"},
		{"days", 72*time.Hour + 59*time.Minute, "3 days, 0:59:00"},
		{"negative", -time.Second, NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.in))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "53.2%", Percent(53.21))
	assert.Equal(t, "0.0%", Percent(float32(0)))
	assert.Equal(t, "100.0%", Percent(99.96))
	assert.Equal(t, NotAvailable, Percent(math.NaN()))
}
