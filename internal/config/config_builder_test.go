package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Locale: "de"}},
		&StructuredConfig{App: App{SearchLimit: 20}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.App.Locale)
	assert.Equal(t, 20, cfg.App.SearchLimit)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://env"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://flags", UserAgent: "ua"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Adapter.BaseURL)
	assert.Equal(t, "ua", cfg.Adapter.UserAgent)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOCALE": "fr"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "fr", b.configs[0].App.Locale)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SEARCH_LIMIT": "many"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-locale", "es"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "es", b.configs[0].App.Locale)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ─────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"export_dir": "/tmp/exports"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/tmp/exports", b.configs[1].App.ExportDir)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"locale": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"locale": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Locale)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	assert.Len(t, b.configs, 1)
}

// ── precedence ────────────────────────────────────────────────────────────────

// TestPrecedence_EnvFlagsJSONDefaults walks one field per source and checks
// that each lower-priority source only fills what the others left empty.
func TestPrecedence_EnvFlagsJSONDefaults(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"locale": "json", "search_region": "json", "export_dir": "/json"},
		"adapter": map[string]any{"request_timeout": "5s"},
	})
	setEnvVars(t, map[string]string{"APP_LOCALE": "env"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-search-region", "gb", "-c", path}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Locale)
	assert.Equal(t, "gb", cfg.App.SearchRegion)
	assert.Equal(t, "/json", cfg.App.ExportDir)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultSearchLimit, cfg.App.SearchLimit)
	assert.Equal(t, defaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestWithDefaults_ProducesValidClientConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	clientCfg := newClientConfig(cfg)
	assert.NoError(t, clientCfg.validate())
	assert.Equal(t, 5, clientCfg.App.PreviewRows)
	assert.Equal(t, 100, clientCfg.App.SearchLimit)
}
