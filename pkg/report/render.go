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

package report

import (
	"strings"

	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// HeaderLine returns the first line of the rendered report.
func HeaderLine(host string) string {
	return "📊 *Server Status Report - " + host + "*"
}

// TitleLine returns the marked title line of a section type.
func TitleLine(t measurement.Type) string {
	return t.Icon() + " *" + t.Title() + "*"
}

// Render serializes the report as Telegram Markdown. Each section is
// preceded by a blank line; scalars render inline in code spans and
// multiline values render as a block under their label. The output depends
// only on the report content.
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteString(HeaderLine(r.Host))

	for _, s := range r.Sections {
		if s.IsEmpty() {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(TitleLine(s.Type))
		for _, e := range s.Entries {
			sb.WriteString("\n - *")
			sb.WriteString(e.Label)
			sb.WriteString(":*")
			if e.Value.IsMultiline() {
				sb.WriteString("\n")
				sb.WriteString(e.Value.Text)
				continue
			}
			sb.WriteString(" `")
			sb.WriteString(e.Value.Text)
			sb.WriteString("`")
		}
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (r *Report) String() string {
	return r.Render()
}
