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

import "time"

// Collector timings for metric collection.
const (
	// CollectorTimeout bounds a single collector run.
	// Collectors should respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second

	// CPUSampleInterval is how long the CPU collector blocks to average utilization.
	CPUSampleInterval = 1 * time.Second

	// ProcessSampleInterval is how long per-process CPU usage is measured over.
	ProcessSampleInterval = 500 * time.Millisecond

	// ReportTimeout bounds a complete report assembly across all collectors.
	ReportTimeout = 30 * time.Second
)

// Report limits.
const (
	// MaxMessageLength is the Telegram Bot API ceiling for a single text message.
	MaxMessageLength = 4096

	// TopProcesses is the number of processes listed by CPU usage.
	TopProcesses = 5
)

// Transport timings for the messaging provider.
const (
	// SendTimeout is the timeout for a single outbound message.
	SendTimeout = 15 * time.Second

	// PollTimeout is the long-poll timeout passed to getUpdates, in seconds.
	PollTimeout = 60

	// SendRate is the default number of outbound messages per second.
	// Telegram allows roughly one message per second into a single chat.
	SendRate = 1.0

	// SendBurst is the default burst of outbound messages.
	SendBurst = 3
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)
