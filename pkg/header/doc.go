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

// Package header provides the common envelope stamped on serialized vpsbot
// documents.
//
// A Header follows Kubernetes-style resource conventions:
//
//	kind: Report
//	apiVersion: vpsbot.dev/v1
//	metadata:
//	  timestamp: "2026-01-02T03:04:05Z"
//	  version: v0.3.0
//	  host: vps-1
//
// Use Init to stamp a fresh document, or New with functional options:
//
//	h := header.New(header.WithKind(header.KindReport), header.WithMetadata("host", name))
package header
