package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	cfg, err := parseEnv([]string{
		"ADAPTER_ADDRESS=todo.local:9000",
		"ADAPTER_BASE_PATH=api/todos",
		"ADAPTER_REQUEST_TIMEOUT=15s",
		"LOG_FILE=/tmp/client.log",
		"LOG_LEVEL=info",
		"CONFIG=/etc/todo.json",
		"UNRELATED=ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "todo.local:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "api/todos", cfg.Adapter.BasePath)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/etc/todo.json", cfg.ConfigFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg, err := parseEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_ValueWithEquals(t *testing.T) {
	cfg, err := parseEnv([]string{"ADAPTER_ADDRESS=http://todo.local/?a=b"})
	require.NoError(t, err)
	assert.Equal(t, "http://todo.local/?a=b", cfg.Adapter.HTTPAddress)
}

func TestParseEnv_BadDuration(t *testing.T) {
	cfg, err := parseEnv([]string{"ADAPTER_REQUEST_TIMEOUT=soon"})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "reading todo client environment")
}
