// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the wnutil configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// PathEnv names the environment variable holding the path of the YAML
// configuration file.
const PathEnv = "WORDNET_CONFIG"

// Default file names looked up in the data directory.
const (
	WNSQLFile  = "wnsql.db"
	GWNSQLFile = "gwn.db"
)

// ErrNoSource is returned by Validate when no data source is configured.
var ErrNoSource = errors.New("no wordnet data source configured")

// Config is the root configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
}

// DataConfig locates the WordNet data.
type DataConfig struct {
	// Dir is a directory holding the databases under their default file
	// names.
	Dir string `yaml:"dir" env:"WORDNET_DATA_DIR"`

	// WNSQL is the path of the WordNet SQL database.
	WNSQL string `yaml:"wnsql" env:"WNSQL_DB"`

	// GWNSQL is the path of the Gloss WordNet SQL database.
	GWNSQL string `yaml:"gwn" env:"GWN_DB"`

	// GWNXML are the paths of gloss corpus XML files.
	GWNXML []string `yaml:"gwn_xml" env:"GWN_XML" env-separator:","`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`

	// JSON disables human readable console output.
	JSON bool `yaml:"json" env:"LOG_JSON"`
}

// Load reads the configuration from the YAML file named by WORDNET_CONFIG,
// if set, and from environment variables. Environment variables take
// precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.Data.Resolve()
	return &cfg, nil
}

// Resolve fills unset database paths with the files in Dir that exist.
func (d *DataConfig) Resolve() {
	if d.Dir == "" {
		return
	}
	for _, f := range []struct {
		path *string
		name string
	}{
		{&d.WNSQL, WNSQLFile},
		{&d.GWNSQL, GWNSQLFile},
	} {
		if *f.path != "" {
			continue
		}
		p := filepath.Join(d.Dir, f.name)
		if _, err := os.Stat(p); err == nil {
			*f.path = p
		}
	}
}

// Validate checks the configuration. It should be called once command line
// overrides have been applied.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Data.WNSQL == "" && c.Data.GWNSQL == "" && len(c.Data.GWNXML) == 0 {
		return fmt.Errorf("config: %w", ErrNoSource)
	}
	return nil
}
