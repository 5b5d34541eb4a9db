/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/worlddata/insights/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CacheConfig holds the response cache configuration details.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	// SweepInterval is the interval between expired entry sweeps, in seconds.
	SweepInterval int `yaml:"sweep_interval"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Catalog DataSource `yaml:"catalog"`
}

// SourceConfig holds the configuration for an individual upstream data source.
type SourceConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout is the request timeout in seconds.
	Timeout int `yaml:"timeout"`
	// APIKeyEnv is the name of the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// BulkSourceConfig holds the configuration for bulk file downloads.
type BulkSourceConfig struct {
	// AllowedBaseURL restricts downloads to URLs under this prefix.
	AllowedBaseURL string `yaml:"allowed_base_url"`
	// Timeout is the download timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// SourcesConfig holds the configuration for all upstream data sources.
type SourcesConfig struct {
	Fred        SourceConfig     `yaml:"fred"`
	WorldBank   SourceConfig     `yaml:"worldbank"`
	DataCommons SourceConfig     `yaml:"datacommons"`
	Census      SourceConfig     `yaml:"census"`
	UNData      BulkSourceConfig `yaml:"undata"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
	Cache    CacheConfig    `yaml:"cache"`
	Database DatabaseConfig `yaml:"database"`
	Sources  SourcesConfig  `yaml:"sources"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
