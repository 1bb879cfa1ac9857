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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigMissing, "bot token is required")

	if err.Code != ErrCodeConfigMissing {
		t.Errorf("expected code %s, got %s", ErrCodeConfigMissing, err.Code)
	}
	if err.Message != "bot token is required" {
		t.Errorf("expected message 'bot token is required', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]any{
		"collector": "disk",
		"mount":     "/boot/efi",
	}

	err := WrapWithContext(ErrCodeUnavailable, "disk usage failed", cause, ctx)

	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["mount"] != "/boot/efi" {
		t.Errorf("expected mount to be /boot/efi")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeUnauthorized, "caller is not the administrator", map[string]any{"caller": int64(42)})
	if err.Context["caller"] != int64(42) {
		t.Errorf("expected caller context, got %v", err.Context)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidRequest, "bad split mode"),
			expected: "[INVALID_REQUEST] bad split mode",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDelivery, "send failed", errors.New("connection reset")),
			expected: "[DELIVERY_FAILED] send failed: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	base := New(ErrCodeConfigMissing, "admin id is required")
	wrapped := fmt.Errorf("startup: %w", base)

	if !IsCode(wrapped, ErrCodeConfigMissing) {
		t.Error("expected wrapped error to match code")
	}
	if IsCode(wrapped, ErrCodeInternal) {
		t.Error("expected different code not to match")
	}
	if IsCode(errors.New("plain"), ErrCodeConfigMissing) {
		t.Error("expected plain error not to match")
	}
	if IsCode(nil, ErrCodeConfigMissing) {
		t.Error("expected nil not to match")
	}
}
