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

// Package humanize formats byte counts and durations for report output.
package humanize

import (
	"fmt"
	"math"
	"time"
)

// NotAvailable is returned for values that cannot be formatted.
const NotAvailable = "N/A"

const unit = 1024

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Number is any numeric type a platform counter may be reported in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bytes scales n by 1024 through B, KB, MB, GB and TB and renders it with two
// decimals. Values beyond the TB range stay in TB. Negative, NaN and infinite
// inputs yield NotAvailable.
func Bytes[T Number](n T) string {
	v := float64(n)
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	i := 0
	for v >= unit && i < len(byteUnits)-1 {
		v /= unit
		i++
	}
	// 1023.999 KB would print as "1024.00 KB".
	if i < len(byteUnits)-1 && math.Round(v*100)/100 >= unit {
		v /= unit
		i++
	}
	return fmt.Sprintf("%.2f %s", v, byteUnits[i])
}

// Duration floors d to whole seconds and renders it as H:MM:SS, prefixed with
// "N day(s), " once it spans at least one day. Negative durations yield
// NotAvailable.
func Duration(d time.Duration) string {
	if d < 0 {
		return NotAvailable
	}

	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400
	clock := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)

	switch days {
	case 0:
		return clock
	case 1:
		return fmt.Sprintf("1 day, %s", clock)
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}

// Percent renders a percentage with a single decimal.
func Percent[T ~float32 | ~float64](p T) string {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", v)
}
