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

package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/errors"
	"github.com/mchmarny/vpsbot/pkg/gateway"
	"github.com/mchmarny/vpsbot/pkg/logging"
)

// botAPI is the subset of tgbotapi.BotAPI the bot uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Handler processes one parsed command.
type Handler interface {
	Handle(ctx context.Context, cmd gateway.Command) gateway.Outcome
}

// Option is a functional option for configuring Bot instances.
type Option func(*Bot)

// WithSendRate limits outbound messages to r per second with the given burst.
func WithSendRate(r float64, burst int) Option {
	return func(b *Bot) {
		b.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithPollTimeout sets the long-polling timeout in seconds.
func WithPollTimeout(seconds int) Option {
	return func(b *Bot) {
		b.pollTimeout = seconds
	}
}

// WithEndpoint overrides the Bot API endpoint, in tgbotapi's
// "https://host/bot%s/%s" form.
func WithEndpoint(endpoint string) Option {
	return func(b *Bot) {
		b.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for Bot API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Bot) {
		b.client = c
	}
}

// Bot sends messages through the Telegram Bot API and feeds received
// commands to a Handler.
type Bot struct {
	api         botAPI
	limiter     *rate.Limiter
	pollTimeout int
	endpoint    string
	client      *http.Client

	// Username is the bot account name reported by the API.
	Username string
}

// New connects to the Bot API with token. An empty token is a
// configuration error; a rejected one is reported as unavailable.
func New(token string, opts ...Option) (*Bot, error) {
	if token == "" {
		return nil, errors.New(errors.ErrCodeConfigMissing, "telegram bot token is required")
	}

	b := newBot(nil, opts...)

	if err := tgbotapi.SetLogger(logging.NewLogLogger(slog.LevelDebug, true)); err != nil {
		slog.Debug("failed to set telegram logger", slog.String("error", err.Error()))
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, b.endpoint, b.client)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to connect to telegram", err)
	}
	b.api = api
	b.Username = api.Self.UserName

	slog.Info("connected to telegram", slog.String("bot", b.Username))
	return b, nil
}

func newBot(api botAPI, opts ...Option) *Bot {
	b := &Bot{
		api:         api,
		limiter:     rate.NewLimiter(rate.Limit(defaults.SendRate), defaults.SendBurst),
		pollTimeout: defaults.PollTimeout,
		endpoint:    tgbotapi.APIEndpoint,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.client == nil {
		// Long polls hold the connection for the poll timeout.
		b.client = &http.Client{Timeout: time.Duration(b.pollTimeout)*time.Second + defaults.SendTimeout}
	}
	return b
}

// Send implements gateway.Sender. It waits for the send limiter and returns
// when the message is accepted, the API rejects it, or ctx is done.
func (b *Bot) Send(ctx context.Context, chatID int64, text, parseMode string) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeRateLimitExceeded, "send limiter wait aborted", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode

	// tgbotapi has no context support; the call is abandoned, not canceled.
	done := make(chan error, 1)
	go func() {
		_, err := b.api.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("telegram send to %d: %w", chatID, err)
		}
		return nil
	case <-ctx.Done():
		return errors.Wrap(errors.ErrCodeTimeout, "telegram send abandoned", ctx.Err())
	}
}

// Run polls for updates and dispatches every command to h on its own
// goroutine until ctx is done. Commands already dispatched run to
// completion, bounded by their send timeouts, and Run waits for them.
func (b *Bot) Run(ctx context.Context, h Handler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	slog.Info("polling for commands", slog.String("bot", b.Username), slog.Int("timeout", b.pollTimeout))

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping update polling")
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			cmd, ok := commandFrom(update)
			if !ok {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				h.Handle(context.WithoutCancel(ctx), cmd)
			}()
		}
	}
}

// commandFrom extracts a command from an update. Non-command messages and
// updates without a sender are skipped.
func commandFrom(u tgbotapi.Update) (gateway.Command, bool) {
	m := u.Message
	if m == nil || m.From == nil || m.Chat == nil || !m.IsCommand() {
		return gateway.Command{}, false
	}
	return gateway.Command{
		Name:     m.Command(),
		CallerID: m.From.ID,
		ChatID:   m.Chat.ID,
	}, true
}
