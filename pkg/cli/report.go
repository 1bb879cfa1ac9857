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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/serializer"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Assemble a status report of this host",
		Description: `Collects the same report the bot sends for /status and writes it
locally. No Telegram credentials are needed.

The report can be output as the Markdown text the bot sends, or as JSON or
YAML. Use --chunks to see how the text would be split into messages.

# Examples

  vpsbot report
  vpsbot report --format json --output report.json
  vpsbot report --format yaml --output cm://monitoring/vpsbot-report
  vpsbot report --chunks
  vpsbot report --chunks --output chunks.txt
  vpsbot report --section cpu --section memory --include "CPU*"`,
		Flags: append([]cli.Flag{
			outputFlag(),
			formatFlag(),
			&cli.BoolFlag{
				Name:  "chunks",
				Usage: "print the text report split into message-sized chunks",
			},
		}, collectionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			started := time.Now()

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateSettings(); err != nil {
				return err
			}

			actx, cancel := context.WithTimeout(ctx, defaults.ReportTimeout)
			defer cancel()
			rep := newAssembler(cfg, started).Assemble(actx)

			if cmd.Bool("chunks") {
				chunks := cfg.Split()(rep.Render(), cfg.MaxMessageLength)
				out := strings.TrimSpace(cmd.String("output"))
				if out == "" {
					return writeChunks(cmd.Root().Writer, chunks)
				}
				var buf bytes.Buffer
				if err := writeChunks(&buf, chunks); err != nil {
					return err
				}
				return serializer.WriteToFile(out, buf.Bytes())
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if c, ok := w.(serializer.Closer); ok {
					if err := c.Close(); err != nil {
						slog.Warn("failed to close output", "error", err)
					}
				}
			}()

			if err := w.Serialize(ctx, rep); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			return nil
		},
	}
}

// writeChunks prints each chunk under a separator line naming its index and
// length in characters.
func writeChunks(w io.Writer, chunks []string) error {
	for i, c := range chunks {
		if _, err := fmt.Fprintf(w, "--- chunk %d/%d (%d chars) ---\n%s\n", i+1, len(chunks), len([]rune(c)), c); err != nil {
			return err
		}
	}
	return nil
}
