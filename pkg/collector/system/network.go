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

package system

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/mchmarny/vpsbot/pkg/humanize"
	"github.com/mchmarny/vpsbot/pkg/measurement"
)

// NetworkCollector reports cumulative traffic and the first IPv4 address of
// each interface. Interfaces without IPv4 are left out.
type NetworkCollector struct {
	Platform Platform
}

// Collect implements collector.Collector.
func (c *NetworkCollector) Collect(ctx context.Context) (*measurement.Section, error) {
	slog.Debug("collecting network")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var errs []error
	b := measurement.NewSection(measurement.TypeNetwork)

	if io, err := c.Platform.NetIO(ctx); err == nil {
		b.SetScalar("Data Sent", humanize.Bytes(io.BytesSent)).
			SetScalar("Data Received", humanize.Bytes(io.BytesRecv))
	} else {
		errs = append(errs, fmt.Errorf("net io: %w", err))
	}

	ifaces, err := c.Platform.Interfaces(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("interfaces: %w", err))
	}
	for _, i := range ifaces {
		if ip := firstIPv4(i.Addrs); ip != "" {
			b.SetScalar("Interface "+i.Name, "IP: "+ip)
		}
	}

	return finish(measurement.TypeNetwork, b, errs)
}

// firstIPv4 returns the first IPv4 address of addrs, given either in CIDR
// or plain form.
func firstIPv4(addrs []string) string {
	for _, a := range addrs {
		ip, _, err := net.ParseCIDR(a)
		if err != nil {
			ip = net.ParseIP(a)
		}
		if ip == nil {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
