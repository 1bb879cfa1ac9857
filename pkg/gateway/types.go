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

package gateway

import (
	"context"
)

// Messages sent by the gateway.
const (
	AckMessage     = "🔄 Collecting server data..."
	RefusalMessage = "⛔ *You are not authorized*"

	startupFormat = "✅ *Bot started successfully!*\n\n" +
		"🖥️ *Server:* `%s`\n" +
		"⏰ *Start time:* `%s`\n\n" +
		"📊 Use `/status` to view full statistics."
)

// Commands understood by the gateway. Both produce the full report.
const (
	CommandStart  = "start"
	CommandStatus = "status"
)

// Outcome describes how a command was handled.
type Outcome string

const (
	OutcomeDelivered    Outcome = "delivered"
	OutcomePartial      Outcome = "partial"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeIgnored      Outcome = "ignored"
)

// Command is one inbound command, already parsed by the transport.
type Command struct {
	// Name is the command without the leading slash, e.g. "status".
	Name string
	// CallerID identifies the user that issued the command.
	CallerID int64
	// ChatID is where replies go.
	ChatID int64
}

// Sender delivers one text message. Implementations do not retry.
type Sender interface {
	Send(ctx context.Context, chatID int64, text, parseMode string) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, chatID int64, text, parseMode string) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, chatID int64, text, parseMode string) error {
	return f(ctx, chatID, text, parseMode)
}
