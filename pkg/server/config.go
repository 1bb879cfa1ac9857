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
package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"golang.org/x/time/rate"
)

const (
	// EnvPort overrides the listen port when no explicit address is configured.
	EnvPort = "PORT"

	defaultPort = 9090
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional handlers, wrapped in the API middleware chain.
	Handlers map[string]http.HandlerFunc

	// Address is the host:port to listen on.
	Address string

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a Config with defaults, honoring $PORT.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "vpsbot",
		Version:           "dev",
		Address:           fmt.Sprintf(":%d", defaultPort),
		RateLimit:         10,
		RateLimitBurst:    20,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port > 0 {
			cfg.Address = fmt.Sprintf(":%d", port)
		}
	}

	return cfg
}

// Option customizes a Server.
type Option func(*Config)

// WithName sets the server name reported in logs.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the version reported in logs and health responses.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithAddress sets the listen address. Empty keeps the default.
func WithAddress(addr string) Option {
	return func(c *Config) {
		if addr != "" {
			c.Address = addr
		}
	}
}

// WithHandler registers additional handlers by pattern.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for p, h := range handlers {
			c.Handlers[p] = h
		}
	}
}

// WithRateLimit sets the API rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Config) {
		c.RateLimit = limit
		c.RateLimitBurst = burst
	}
}
