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
// Package cli implements the vpsbot command-line interface.
//
// # Commands
//
// serve - Run the bot:
//
//	vpsbot serve --token 123:abc --admin-id 42
//
// Connects to Telegram, notifies the administrator that the bot started and
// answers /start and /status until SIGINT or SIGTERM.
//
// report - Assemble a report locally:
//
//	vpsbot report --format json --output report.json
//
// Writes the report as Markdown text (default), JSON or YAML to stdout, a
// file, or a ConfigMap (cm://namespace/name). --chunks shows the message
// split.
//
// version - Print build information.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--config, -c   YAML configuration file
//
// # Environment Variables
//
//	LOG_LEVEL               log verbosity
//	VPSBOT_CONFIG           configuration file path
//	VPSBOT_TOKEN            Telegram bot token
//	VPSBOT_ADMIN_ID         administrator Telegram user ID
//	VPSBOT_METRICS_ADDRESS  health and metrics listen address
//	VPSBOT_SPLIT_MODE       positional or lines
//	VPSBOT_PARALLEL         run collectors concurrently
//	VPSBOT_PER_CORE_CPU     include per-core CPU usage
//	VPSBOT_EXCLUDE          entry label patterns to hide
//
// Flags and environment variables override values from the config file.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/vpsbot/pkg/cli.version=1.0.0'"
package cli
