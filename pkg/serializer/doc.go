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
// Package serializer writes vpsbot documents to stdout, files, Kubernetes
// ConfigMaps and HTTP responses.
//
// # Formats
//
//   - text: the Markdown rendering of a Renderer (what the chat bot sends)
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if c, ok := w.(serializer.Closer); ok {
//		defer c.Close()
//	}
//	if err := w.Serialize(ctx, rep); err != nil {
//		return err
//	}
//
// A path of the form cm://namespace/name applies the document to a ConfigMap
// using server-side apply, with the content under data.report.{md|json|yaml}.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer
