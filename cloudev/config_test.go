package cloudev

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("host: https://api.cloudhub.mn\napi_key: k-123\nmerchant_id: m-0001\nlogger: true\n"), 0644)
	require.NoError(t, err)

	cfg, err := GetConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.cloudhub.mn", cfg.Host)
	assert.Equal(t, "k-123", cfg.APIKey)
	assert.Equal(t, "m-0001", cfg.MerchantID)
	assert.True(t, cfg.Logger)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Host: "https://api.cloudhub.mn", APIKey: "k-123", MerchantID: "m-0001"}
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := GetConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
