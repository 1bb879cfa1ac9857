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
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/vpsbot/pkg/config"
	"github.com/mchmarny/vpsbot/pkg/gateway"
	"github.com/mchmarny/vpsbot/pkg/server"
	"github.com/mchmarny/vpsbot/pkg/telegram"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the bot and answer /status commands",
		Description: `Connects to the Telegram Bot API, sends a startup notice to the
administrator and answers commands until interrupted.

Only the configured administrator receives reports; everyone else gets a
refusal. When --metrics-address is set, /health, /ready and /metrics are
served on it. Under systemd (Type=notify) readiness and shutdown are
reported to the service manager.

# Examples

  VPSBOT_TOKEN=123:abc VPSBOT_ADMIN_ID=42 vpsbot serve
  vpsbot --config /etc/vpsbot/config.yaml serve --metrics-address :9090`,
		Flags: append(botFlags(), collectionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			started := time.Now()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			bot, err := telegram.New(cfg.Token, telegram.WithSendRate(cfg.SendRate, cfg.SendBurst))
			if err != nil {
				return err
			}

			return serve(ctx, cfg, bot, started)
		},
	}
}

// poller is the part of telegram.Bot serve drives.
type poller interface {
	gateway.Sender
	Run(ctx context.Context, h telegram.Handler) error
}

// serve runs the gateway on bot, plus the metrics server when configured,
// until ctx is done or either of them fails.
func serve(ctx context.Context, cfg *config.Config, bot poller, started time.Time) error {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	asm := newAssembler(cfg, started)
	asm.Host = host

	gw := &gateway.Gateway{
		AdminID:          cfg.AdminID,
		Assembler:        asm,
		Sender:           bot,
		Host:             host,
		MaxMessageLength: cfg.MaxMessageLength,
		Split:            cfg.Split(),
		ParseMode:        cfg.ParseMode,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddress != "" {
		srv := server.New(
			server.WithName(name),
			server.WithVersion(version),
			server.WithAddress(cfg.MetricsAddress),
		)
		g.Go(func() error {
			if err := srv.Start(gctx); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	go gw.NotifyStartup(gctx)

	g.Go(func() error {
		defer cancel()
		return bot.Run(gctx, gw)
	})

	notify(daemon.SdNotifyReady)
	slog.Info("bot ready", "host", host, "admin", cfg.AdminID, "parallel", cfg.Parallel)

	err = g.Wait()
	notify(daemon.SdNotifyStopping)
	if err != nil {
		return err
	}

	slog.Info("bot stopped")
	return nil
}

// notify reports state to systemd. It is a no-op outside a notify service.
func notify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("systemd notify failed", "state", state, "error", err)
		return
	}
	if sent {
		slog.Debug("systemd notified", "state", state)
	}
}
