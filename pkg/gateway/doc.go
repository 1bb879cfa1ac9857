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

// Package gateway answers the bot commands.
//
// The gateway accepts /start and /status from a single administrator. Any
// other caller receives a fixed refusal and the attempt is logged; the
// report is never assembled for them. For the administrator the gateway
// sends an acknowledgement, assembles the report, splits it into chunks and
// sends the chunks in order.
//
// Delivery is best effort. A failed send is logged and counted, never
// retried and never returned to the caller. When a report chunk fails, the
// remaining chunks are dropped.
//
// NotifyStartup sends the one-time startup notice before the transport
// starts accepting commands.
package gateway
