// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type TreeConfig struct {
	Keys   []float64 `yaml:"keys"`
	Delete []float64 `yaml:"delete"`
}

type DisplayConfig struct {
	Color bool `yaml:"color"`
}

type WorkspaceConfig struct {
	Expiration  time.Duration `yaml:"expiration"`
	Cleanup     time.Duration `yaml:"cleanup"`
	BloomSize   uint          `yaml:"bloom_size"`
	BloomHashes uint          `yaml:"bloom_hashes"`
}

type StressConfig struct {
	Operations int   `yaml:"operations"`
	KeyRange   int   `yaml:"key_range"`
	Seed       int64 `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Tree      TreeConfig      `yaml:"tree"`
	Display   DisplayConfig   `yaml:"display"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Stress    StressConfig    `yaml:"stress"`
	Log       LogConfig       `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Tree: TreeConfig{
			Keys:   []float64{10, 20, 30, 25, 28, 27, -1},
			Delete: []float64{10, 27},
		},
		Display: DisplayConfig{
			Color: true,
		},
		Workspace: WorkspaceConfig{
			Expiration:  30 * time.Minute,
			Cleanup:     5 * time.Minute,
			BloomSize:   4096,
			BloomHashes: 4,
		},
		Stress: StressConfig{
			Operations: 10000,
			KeyRange:   1000,
			Seed:       1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the YAML config at path, or ~/.avlkit.yaml when path is
// empty. A missing file yields the defaults. Fields absent from the file keep
// their default values. On a malformed file the defaults are returned along
// with the parse error so the caller can warn and carry on.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

func writeDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when it does not exist yet.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(w, "📊 Current settings:\n\n%s", data)
	return nil
}
