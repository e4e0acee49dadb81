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

// Package config implements the configuration functionality
package config

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snyk/honeybadger-lambda-go/internal/httpclient"
)

const (
	apiKeyKey       = "HONEYBADGER_API_KEY"
	endpointKey     = "HONEYBADGER_ENDPOINT"
	environmentKey  = "HONEYBADGER_ENV"
	hostnameKey     = "HONEYBADGER_HOSTNAME"
	sourceRadiusKey = "HONEYBADGER_SOURCE_RADIUS"
	reportStatsKey  = "HONEYBADGER_REPORT_STATS"
	sourceKey       = "HONEYBADGER_SOURCE_CONTEXT"
	logLevelKey     = "HONEYBADGER_LOG_LEVEL"
	taskRootKey     = "LAMBDA_TASK_ROOT"

	DefaultEndpoint        = "https://api.honeybadger.io"
	DefaultEnvironmentName = "lambda"
	DefaultHostname        = "aws_lambda"
	DefaultSourceRadius    = 3

	NotifierName = "Honeybadger for Go in AWS Lambda"
	NotifierUrl  = "https://github.com/snyk/honeybadger-lambda-go"
)

var Version = "0.1"

// Config is the read-only configuration of a notifier. It is built once per process or per
// invocation and never shared through a package level variable.
type Config struct {
	apiKey          string
	endpoint        string
	environmentName string
	hostname        string
	sourceRadius    int
	reportStats     bool
	sourceContext   bool
	configFile      string
	logger          *zerolog.Logger
	httpClientFunc  func() *http.Client
}

func New() *Config {
	c := &Config{
		endpoint:        DefaultEndpoint,
		environmentName: DefaultEnvironmentName,
		hostname:        DefaultHostname,
		sourceRadius:    DefaultSourceRadius,
		sourceContext:   true,
	}
	c.logger = NewLogger(os.Stderr, logLevelFromEnv())
	client := httpclient.NewHTTPClient(c.logger)
	c.httpClientFunc = func() *http.Client { return client }
	c.fromEnv()
	return c
}

// NewLogger creates the console logger used by all components.
func NewLogger(out io.Writer, level zerolog.Level) *zerolog.Logger {
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = true
		w.TimeFormat = time.RFC3339Nano
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"method",
			zerolog.MessageFieldName,
		}
		w.FieldsExclude = []string{"method"}
	})
	logger := zerolog.New(w).With().Timestamp().Str("method", "").Logger().Level(level)
	return &logger
}

func logLevelFromEnv() zerolog.Level {
	level, err := zerolog.ParseLevel(os.Getenv(logLevelKey))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) fromEnv() {
	if v := os.Getenv(apiKeyKey); v != "" {
		c.apiKey = v
	}
	if v := os.Getenv(endpointKey); v != "" {
		c.SetEndpoint(v)
	}
	if v := os.Getenv(environmentKey); v != "" {
		c.environmentName = v
	}
	if v := os.Getenv(hostnameKey); v != "" {
		c.hostname = v
	}
	if v := os.Getenv(sourceRadiusKey); v != "" {
		radius, err := strconv.Atoi(v)
		if err != nil || radius < 0 {
			c.logger.Warn().Str("method", "fromEnv").Str(sourceRadiusKey, v).Msg("ignoring invalid source radius")
		} else {
			c.sourceRadius = radius
		}
	}
	c.boolFromEnv(reportStatsKey, &c.reportStats)
	c.boolFromEnv(sourceKey, &c.sourceContext)
}

func (c *Config) boolFromEnv(key string, target *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		c.logger.Warn().Str("method", "fromEnv").Str(key, v).Msg("ignoring invalid boolean")
		return
	}
	*target = parsed
}

func (c *Config) ApiKey() string { return c.apiKey }

func (c *Config) SetApiKey(apiKey string) { c.apiKey = apiKey }

// Endpoint is the Honeybadger API host without a trailing slash.
func (c *Config) Endpoint() string { return c.endpoint }

func (c *Config) SetEndpoint(endpoint string) {
	c.endpoint = strings.TrimSuffix(endpoint, "/")
}

func (c *Config) EnvironmentName() string { return c.environmentName }

func (c *Config) SetEnvironmentName(name string) { c.environmentName = name }

func (c *Config) Hostname() string { return c.hostname }

func (c *Config) SetHostname(hostname string) { c.hostname = hostname }

// SourceRadius is the number of lines reported before and after the failing line.
func (c *Config) SourceRadius() int { return c.sourceRadius }

func (c *Config) SetSourceRadius(radius int) {
	if radius < 0 {
		radius = 0
	}
	c.sourceRadius = radius
}

func (c *Config) IsReportStatsEnabled() bool { return c.reportStats }

func (c *Config) SetReportStatsEnabled(enabled bool) { c.reportStats = enabled }

// IsSourceContextEnabled reports whether the source window around the failing line is read from disk.
func (c *Config) IsSourceContextEnabled() bool { return c.sourceContext }

func (c *Config) SetSourceContextEnabled(enabled bool) { c.sourceContext = enabled }

func (c *Config) ConfigFile() string { return c.configFile }

func (c *Config) SetConfigFile(path string) { c.configFile = path }

func (c *Config) Logger() *zerolog.Logger { return c.logger }

func (c *Config) SetLogger(logger *zerolog.Logger) { c.logger = logger }

func (c *Config) HttpClient() *http.Client { return c.httpClientFunc() }

func (c *Config) SetHttpClientFunc(f func() *http.Client) { c.httpClientFunc = f }
