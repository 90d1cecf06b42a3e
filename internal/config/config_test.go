// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points SCENARIOS_CFG_FILE at a testdata file, loads it under the
// given namespace and resets the global afterwards.
func withConfig(t *testing.T, testFile string, ns string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv("SCENARIOS_CFG_FILE", absPath)

	Config = Type{Namespace: ns}
	defer func() { Config = Type{} }()

	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		testFile string
		wantErr  bool
	}{
		{name: "simple", testFile: "simple.yaml"},
		{name: "namespaced", testFile: "namespaced.yaml"},
		{name: "invalid yaml", testFile: "invalid.yaml", wantErr: true},
		{name: "missing file", testFile: "nope.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absPath, _ := filepath.Abs(filepath.Join("testdata", tt.testFile))
			t.Setenv("SCENARIOS_CFG_FILE", absPath)
			Config = Type{}
			defer func() { Config = Type{} }()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, absPath, cfg.Source)
			assert.NotEmpty(t, cfg.Data)
		})
	}
}

func TestLoad_PreservesNamespace(t *testing.T) {
	withConfig(t, "simple.yaml", "hello", func(t *testing.T) {
		assert.Equal(t, "hello", Config.Namespace)
		_, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "hello", Config.Namespace)
	})
}

func TestFile_Directory(t *testing.T) {
	t.Setenv("SCENARIOS_CFG_FILE", t.TempDir())
	_, err := File()
	assert.ErrorContains(t, err, "points to a directory")
}

func TestGetString(t *testing.T) {
	withConfig(t, "namespaced.yaml", "s3-basics", func(t *testing.T) {
		v, err := GetString("region")
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", v, "namespaced key wins")

		v, err = GetString("state.file")
		require.NoError(t, err)
		assert.Equal(t, "state.json", v, "falls back to bare key")

		v, err = GetString("profile", "default")
		require.NoError(t, err)
		assert.Equal(t, "default", v)

		_, err = GetString("retry")
		assert.Error(t, err, "map is not a string")
	})

	withConfig(t, "namespaced.yaml", "hello", func(t *testing.T) {
		v, err := GetString("region")
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", v)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "simple.yaml", "", func(t *testing.T) {
		v, err := GetInt("retry.max_retries")
		require.NoError(t, err)
		assert.Equal(t, 4, v)

		v, err = GetInt("retry.missing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = GetInt("region")
		assert.Error(t, err)
	})

	withConfig(t, "namespaced.yaml", "s3-basics", func(t *testing.T) {
		v, err := GetInt("retry.max_retries")
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})
}

func TestGetDuration(t *testing.T) {
	withConfig(t, "simple.yaml", "", func(t *testing.T) {
		d, err := GetDuration("pacing.char_delay_ms")
		require.NoError(t, err)
		assert.Equal(t, 5*time.Millisecond, d)

		d, err = GetDuration("pacing.word_delay_ms", time.Second)
		require.NoError(t, err)
		assert.Equal(t, time.Second, d)
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, "simple.yaml", "", func(t *testing.T) {
		v, err := GetBool("verbose")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = GetBool("confirm_all", false)
		require.NoError(t, err)
		assert.False(t, v)

		_, err = GetBool("region")
		assert.Error(t, err)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "namespaced.yaml", "s3-basics", func(t *testing.T) {
		v, err := GetStringSlice("storage_classes")
		require.NoError(t, err)
		assert.Equal(t, []string{"Standard", "Standard-IA"}, v)

		v, err = GetStringSlice("missing", []string{"x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, v)

		_, err = GetStringSlice("region")
		assert.Error(t, err)
	})
}

func TestGetters_MalformedValueKeepsDefault(t *testing.T) {
	withConfig(t, "malformed.yaml", "", func(t *testing.T) {
		d, err := GetDuration("retry.interval_ms", time.Second)
		assert.Error(t, err)
		assert.Equal(t, time.Second, d)

		i, err := GetInt("retry.max_retries", 10)
		assert.ErrorContains(t, err, "retry.max_retries")
		assert.Equal(t, 10, i)

		b, err := GetBool("pacing.enabled", true)
		assert.Error(t, err)
		assert.True(t, b)

		s, err := GetString("state.file", "state.json")
		assert.Error(t, err)
		assert.Equal(t, "state.json", s)

		ss, err := GetStringSlice("storage_classes", []string{"x"})
		assert.Error(t, err)
		assert.Equal(t, []string{"x"}, ss)

		i, err = GetInt("retry.max_retries")
		assert.Error(t, err)
		assert.Zero(t, i)
	})
}
