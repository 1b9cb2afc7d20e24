package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	s, err := LoadServer("")
	require.NoError(t, err)
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "development", s.Env)
	assert.False(t, s.Production())
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, 100, s.Log.MaxSize)
}

func TestLoadServer_Env(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_ENV", "production")
	t.Setenv("API_LOG_LEVEL", "debug")
	t.Setenv("API_CORS_ORIGINS", "https://a.example,https://b.example")

	s, err := LoadServer("")
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port)
	assert.True(t, s.Production())
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSOrigins)
}

func TestLoadServer_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	writeFile(t, path, `
port: "7000"
contract_dir: /srv/contracts
log:
  format: text
`)

	s, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", s.Port)
	assert.Equal(t, "/srv/contracts", s.ContractDir)
	assert.Equal(t, "text", s.Log.Format)
	assert.Equal(t, "stdout", s.Log.Output)
}
