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
package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mchmarny/vpsbot/pkg/defaults"
	"github.com/mchmarny/vpsbot/pkg/header"
	"github.com/mchmarny/vpsbot/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	configMapFieldManager = "vpsbot"
	configMapAppName      = "vpsbot"
)

// ConfigMapWriter writes serialized reports to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	kube      func() (client.Interface, error)
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    checkFormat(format),
		kube: func() (client.Interface, error) {
			c, cfg, err := client.GetKubeClient()
			if err != nil {
				return nil, err
			}
			slog.Debug("kubernetes client ready", "auth_method", client.AuthMethod(cfg))
			return c, nil
		},
	}
}

// Serialize applies doc to the ConfigMap. The ConfigMap carries:
//   - data.report.{md|json|yaml}: the serialized document
//   - data.format: the format used
//   - data.timestamp: the document timestamp, or now when it has none
//   - data.host: the reporting host, when known
func (w *ConfigMapWriter) Serialize(ctx context.Context, doc any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	kc, err := w.kube()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	data, labels, err := configMapContent(w.format, doc, time.Now())
	if err != nil {
		return err
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(labels).
		WithData(data)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = kc.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}

	return nil
}

// Close is a no-op for ConfigMapWriter.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func configMapContent(format Format, doc any, now time.Time) (map[string]string, map[string]string, error) {
	content, err := Marshal(format, doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	kind := header.KindReport.String()
	version := "unknown"
	timestamp := now.UTC().Format(time.RFC3339)
	host := ""

	if h, ok := doc.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		md := h.GetMetadata()
		if v := md["version"]; v != "" {
			version = v
		}
		if v := md["timestamp"]; v != "" {
			timestamp = v
		}
		host = md["host"]
	}

	data := map[string]string{
		"report." + format.Extension(): string(content),
		"format":                       string(format),
		"timestamp":                    timestamp,
	}
	if host != "" {
		data["host"] = host
	}

	labels := map[string]string{
		"app.kubernetes.io/name":      configMapAppName,
		"app.kubernetes.io/component": strings.ToLower(kind),
		"app.kubernetes.io/version":   version,
	}

	return data, labels, nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
