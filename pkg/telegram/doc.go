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

// Package telegram is the Telegram Bot API transport.
//
// Bot implements gateway.Sender, throttled by a token bucket limiter, and
// runs the long-polling loop that turns incoming /commands into
// gateway.Command values:
//
//	bot, err := telegram.New(cfg.Token, telegram.WithSendRate(cfg.SendRate, cfg.SendBurst))
//	if err != nil {
//	    return err
//	}
//	gw := &gateway.Gateway{AdminID: cfg.AdminID, Sender: bot, Assembler: asm}
//	return bot.Run(ctx, gw)
//
// Each command is handled on its own goroutine. Sends are never retried.
package telegram
