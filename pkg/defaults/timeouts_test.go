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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Collector timings
		{"CollectorTimeout", CollectorTimeout, 5 * time.Second, 30 * time.Second},
		{"CPUSampleInterval", CPUSampleInterval, 100 * time.Millisecond, 5 * time.Second},
		{"ProcessSampleInterval", ProcessSampleInterval, 100 * time.Millisecond, 5 * time.Second},
		{"ReportTimeout", ReportTimeout, 10 * time.Second, 60 * time.Second},

		// Transport
		{"SendTimeout", SendTimeout, 5 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestCPUSampleFitsInCollectorTimeout(t *testing.T) {
	// CPU sampling blocks for the whole interval, so the collector budget must cover it
	if CPUSampleInterval >= CollectorTimeout {
		t.Errorf("CPUSampleInterval (%v) should be less than CollectorTimeout (%v)",
			CPUSampleInterval, CollectorTimeout)
	}
}

func TestCollectorTimeoutFitsInReport(t *testing.T) {
	if CollectorTimeout >= ReportTimeout {
		t.Errorf("CollectorTimeout (%v) should be less than ReportTimeout (%v)",
			CollectorTimeout, ReportTimeout)
	}
}

func TestMessageLimits(t *testing.T) {
	if MaxMessageLength != 4096 {
		t.Errorf("MaxMessageLength = %d, want Telegram ceiling 4096", MaxMessageLength)
	}
	if TopProcesses <= 0 {
		t.Errorf("TopProcesses = %d, want positive", TopProcesses)
	}
	if SendBurst < 1 {
		t.Errorf("SendBurst = %d, want at least 1", SendBurst)
	}
}
