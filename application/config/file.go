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

package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "honeybadger.yml"
	EnvFileName    = ".honeybadger.env"
)

// fileSettings is the layout of honeybadger.yml. Unset keys keep their current value.
type fileSettings struct {
	ApiKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	Env          string `yaml:"env"`
	Hostname     string `yaml:"hostname"`
	SourceRadius *int   `yaml:"source_radius"`
	ReportStats  *bool  `yaml:"report_stats"`
	Source       *bool  `yaml:"source_context"`
}

// Load reads the env files and the first honeybadger.yml found, then re-applies the environment so
// that variables always win over file settings. An explicitly set config file must exist.
func (c *Config) Load() error {
	for _, fileName := range c.envFiles() {
		c.loadEnvFile(fileName)
	}

	configFile, err := c.findConfigFile()
	if err != nil {
		return err
	}
	if configFile != "" {
		if err = c.LoadFile(configFile); err != nil {
			return err
		}
	}
	c.fromEnv()
	return nil
}

// LoadFile applies the settings of a single yaml file.
func (c *Config) LoadFile(fileName string) error {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Wrap(err, "couldn't read config file "+fileName)
	}
	var settings fileSettings
	if err = yaml.Unmarshal(bytes, &settings); err != nil {
		return errors.Wrap(err, "couldn't parse config file "+fileName)
	}

	if settings.ApiKey != "" {
		c.apiKey = settings.ApiKey
	}
	if settings.Endpoint != "" {
		c.SetEndpoint(settings.Endpoint)
	}
	if settings.Env != "" {
		c.environmentName = settings.Env
	}
	if settings.Hostname != "" {
		c.hostname = settings.Hostname
	}
	if settings.SourceRadius != nil {
		c.SetSourceRadius(*settings.SourceRadius)
	}
	if settings.ReportStats != nil {
		c.reportStats = *settings.ReportStats
	}
	if settings.Source != nil {
		c.sourceContext = *settings.Source
	}
	c.logger.Debug().Str("method", "LoadFile").Str("fileName", fileName).Msg("loaded.")
	return nil
}

func (c *Config) findConfigFile() (string, error) {
	if c.configFile != "" {
		if _, err := os.Stat(c.configFile); err != nil {
			return "", errors.Wrap(err, "configured config file not found")
		}
		return c.configFile, nil
	}

	var candidates []string
	if taskRoot := os.Getenv(taskRootKey); taskRoot != "" {
		candidates = append(candidates, filepath.Join(taskRoot, ConfigFileName))
	}
	candidates = append(candidates, ConfigFileName)
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	if found, err := xdg.SearchConfigFile(filepath.Join("honeybadger", ConfigFileName)); err == nil {
		return found, nil
	}
	c.logger.Debug().Str("method", "findConfigFile").Msg("no config file found")
	return "", nil
}

func (c *Config) envFiles() []string {
	var files []string
	if taskRoot := os.Getenv(taskRootKey); taskRoot != "" {
		files = append(files, filepath.Join(taskRoot, EnvFileName))
	}
	files = append(files, EnvFileName)
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, EnvFileName))
	}
	return files
}

func (c *Config) loadEnvFile(fileName string) {
	file, err := os.Open(fileName)
	if err != nil {
		c.logger.Debug().Str("method", "loadEnvFile").Msg("Couldn't load " + fileName)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	env := gotenv.Parse(file)
	for k, v := range env {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			c.logger.Warn().Str("method", "loadEnvFile").Msg("Couldn't set environment variable " + k)
		}
	}
	c.logger.Debug().Str("method", "loadEnvFile").Str("fileName", fileName).Msg("loaded.")
}
