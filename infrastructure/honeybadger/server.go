/*
 * © 2026 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package honeybadger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"

	"github.com/snyk/honeybadger-lambda-go/domain/notice"
)

const bytesPerMegabyte = 1024 * 1024

func (b *Builder) serverPayload() notice.ServerInfo {
	stats := map[string]any{}
	if b.c.IsReportStatsEnabled() {
		stats = collectStats(b.c.Logger())
	}
	return notice.ServerInfo{
		ProjectRoot:     "AWS Lambda." + b.execCtx.FunctionName,
		EnvironmentName: b.c.EnvironmentName(),
		Hostname:        b.c.Hostname(),
		Time:            b.now().UTC().Format(notice.TimeFormat),
		Pid:             os.Getpid(),
		Stats:           stats,
	}
}

// collectStats reports memory in megabytes and the load averages, skipping what the host can't provide.
func collectStats(logger *zerolog.Logger) map[string]any {
	stats := map[string]any{}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats["mem"] = map[string]any{
			"total":      megabytes(vm.Total),
			"free":       megabytes(vm.Free),
			"buffers":    megabytes(vm.Buffers),
			"cached":     megabytes(vm.Cached),
			"free_total": megabytes(vm.Free + vm.Buffers + vm.Cached),
		}
	} else {
		logger.Debug().Err(err).Str("method", "collectStats").Msg("couldn't read memory stats")
	}
	if avg, err := load.Avg(); err == nil {
		stats["load"] = map[string]any{
			"one":     avg.Load1,
			"five":    avg.Load5,
			"fifteen": avg.Load15,
		}
	} else {
		logger.Debug().Err(err).Str("method", "collectStats").Msg("couldn't read load averages")
	}
	return stats
}

func megabytes(b uint64) float64 {
	return float64(b) / bytesPerMegabyte
}
