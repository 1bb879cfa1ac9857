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
// Package server implements the optional vpsbot HTTP endpoint.
//
// # Endpoints
//
// GET /health - liveness check, always 200 with {"status": "healthy", ...}
//
// GET /ready - readiness check, 503 until the server is serving
//
// GET /metrics - Prometheus exposition of the bot, collector and HTTP metrics
//
// /metrics and any handlers registered with WithHandler are wrapped in the
// middleware chain: metrics, request ID (X-Request-Id, UUID), panic
// recovery, token bucket rate limiting (golang.org/x/time/rate) and debug
// request logging. The health checks bypass it. Reports are only delivered to the
// administrator over chat and have no HTTP route.
//
// # Usage
//
//	s := server.New(
//	    server.WithVersion(version),
//	    server.WithAddress(":9090"),
//	)
//	if err := s.Start(ctx); err != nil {
//	    return err
//	}
//
// Start blocks until ctx is canceled and then shuts down gracefully within
// the configured shutdown timeout.
package server
