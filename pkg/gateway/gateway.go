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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mchmarny/vpsbot/pkg/chunk"
	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/errors"
	"github.com/mchmarny/vpsbot/pkg/report"
)

// ParseModeMarkdown is the Telegram legacy Markdown parse mode.
const ParseModeMarkdown = "Markdown"

// Gateway authorizes commands and answers them with chunked reports.
// It is safe for concurrent use; every command is handled independently.
type Gateway struct {
	// AdminID is the only caller allowed to request reports.
	AdminID int64

	Assembler report.Assembler
	Sender    Sender

	// Host is shown in the startup notice.
	Host string

	// MaxMessageLength bounds each outbound chunk. Zero means defaults.MaxMessageLength.
	MaxMessageLength int
	// Split defaults to chunk.SplitPositional.
	Split chunk.Split
	// ParseMode defaults to ParseModeMarkdown.
	ParseMode string
	// SendTimeout bounds each send. Zero means defaults.SendTimeout.
	SendTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Authorized reports whether callerID is the administrator.
func (g *Gateway) Authorized(callerID int64) bool {
	return callerID == g.AdminID
}

// Handle processes one command: unauthorized callers get the refusal
// message; the administrator gets an acknowledgement followed by the report
// chunks in order. Delivery failures are logged and never returned.
func (g *Gateway) Handle(ctx context.Context, cmd Command) Outcome {
	start := time.Now()
	name := strings.TrimPrefix(strings.ToLower(cmd.Name), "/")
	log := slog.With(
		slog.String("request_id", uuid.New().String()),
		slog.String("command", name),
		slog.Int64("caller", cmd.CallerID),
	)

	outcome := g.handle(ctx, log, name, cmd)

	if outcome == OutcomeIgnored {
		commandsTotal.WithLabelValues("other", string(outcome)).Inc()
		return outcome
	}
	commandsTotal.WithLabelValues(name, string(outcome)).Inc()
	commandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	log.Info("command handled", slog.String("outcome", string(outcome)), slog.Duration("duration", time.Since(start)))
	return outcome
}

func (g *Gateway) handle(ctx context.Context, log *slog.Logger, name string, cmd Command) Outcome {
	if name != CommandStart && name != CommandStatus {
		return OutcomeIgnored
	}

	if !g.Authorized(cmd.CallerID) {
		err := errors.NewWithContext(errors.ErrCodeUnauthorized, "unauthorized access attempt",
			map[string]any{"caller": cmd.CallerID, "chat": cmd.ChatID})
		log.Warn("rejected command", slog.String("error", err.Error()))
		g.send(ctx, log, cmd.ChatID, RefusalMessage)
		return OutcomeUnauthorized
	}

	// The acknowledgement goes out before collection starts.
	g.send(ctx, log, cmd.ChatID, AckMessage)

	actx, cancel := context.WithTimeout(ctx, defaults.ReportTimeout)
	text := g.Assembler.Assemble(actx).Render()
	cancel()
	parts := g.split()(text, g.maxLen())
	log.Debug("report ready", slog.Int("length", len(text)), slog.Int("chunks", len(parts)))

	for i, part := range parts {
		if !g.send(ctx, log, cmd.ChatID, part) {
			// Later chunks would arrive without the text preceding them.
			log.Warn("abandoning report delivery", slog.Int("chunk", i+1), slog.Int("chunks", len(parts)))
			return OutcomePartial
		}
	}
	return OutcomeDelivered
}

// NotifyStartup sends the one-time startup notice to the administrator.
// Failure is logged and otherwise ignored.
func (g *Gateway) NotifyStartup(ctx context.Context) {
	log := slog.With(slog.String("request_id", uuid.New().String()), slog.String("command", "startup"))
	msg := StartupMessage(g.Host, g.now())
	if g.send(ctx, log, g.AdminID, msg) {
		log.Info("startup notice sent")
	}
}

// StartupMessage renders the startup notice for host at t.
func StartupMessage(host string, t time.Time) string {
	return fmt.Sprintf(startupFormat, host, t.Format("2006-01-02 15:04:05"))
}

// send delivers one message and reports whether it succeeded.
func (g *Gateway) send(ctx context.Context, log *slog.Logger, chatID int64, text string) bool {
	timeout := g.SendTimeout
	if timeout <= 0 {
		timeout = defaults.SendTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := g.Sender.Send(sctx, chatID, text, g.parseMode()); err != nil {
		messagesSent.WithLabelValues("error").Inc()
		derr := errors.WrapWithContext(errors.ErrCodeDelivery, "failed to send message", err,
			map[string]any{"chat": chatID, "length": len(text)})
		log.Error("delivery failed", slog.String("error", derr.Error()))
		return false
	}
	messagesSent.WithLabelValues("success").Inc()
	return true
}

func (g *Gateway) split() chunk.Split {
	if g.Split != nil {
		return g.Split
	}
	return chunk.SplitPositional
}

func (g *Gateway) maxLen() int {
	if g.MaxMessageLength > 0 {
		return g.MaxMessageLength
	}
	return defaults.MaxMessageLength
}

func (g *Gateway) parseMode() string {
	if g.ParseMode != "" {
		return g.ParseMode
	}
	return ParseModeMarkdown
}

func (g *Gateway) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
