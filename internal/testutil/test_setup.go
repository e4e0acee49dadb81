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

package testutil

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/snyk/honeybadger-lambda-go/application/config"
)

const TestApiKey = "00000000-0000-0000-0000-000000000001"

// UnitTest returns a fresh config with a test API key, no stats collection, and a logger that
// writes into the returned buffer.
func UnitTest(t *testing.T) (*config.Config, *LogBuffer) {
	t.Helper()
	c := config.New()
	c.SetApiKey(TestApiKey)
	c.SetEndpoint(config.DefaultEndpoint)
	c.SetEnvironmentName(config.DefaultEnvironmentName)
	c.SetHostname(config.DefaultHostname)
	c.SetReportStatsEnabled(false)
	c.SetSourceContextEnabled(true)
	c.SetSourceRadius(config.DefaultSourceRadius)
	logs := &LogBuffer{}
	c.SetLogger(config.NewLogger(logs, zerolog.TraceLevel))
	return c, logs
}

// LogBuffer is a goroutine safe log sink.
type LogBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (l *LogBuffer) Write(p []byte) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.buf.Write(p)
}

func (l *LogBuffer) String() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.buf.String()
}
