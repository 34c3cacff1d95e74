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
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), *config)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	data := "tree:\n  keys: [1, 2, 3]\nworkspace:\n  expiration: 2m\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, config.Tree.Keys)
	require.Equal(t, []float64{10, 27}, config.Tree.Delete)
	require.Equal(t, 2*time.Minute, config.Workspace.Expiration)
	require.Equal(t, 5*time.Minute, config.Workspace.Cleanup)
	require.Equal(t, "debug", config.Log.Level)
	require.True(t, config.Display.Color)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree: [not, a, map"), 0644))

	config, err := LoadConfig(path)
	require.Error(t, err)
	require.Equal(t, defaultConfig(), *config)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path))
	require.Contains(t, out.String(), "(newly created)")
	require.Contains(t, out.String(), "bloom_hashes: 4")
	require.FileExists(t, path)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), *config)

	out.Reset()
	require.NoError(t, displaySettings(&out, path))
	require.NotContains(t, out.String(), "(newly created)")
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	log, err := newLogger(&out, "warn")
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "shown")

	_, err = newLogger(&out, "loud")
	require.Error(t, err)
}
