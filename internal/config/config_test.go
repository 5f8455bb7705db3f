package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	cfg := NewFromArgs("tinylink", nil)

	assert.Equal(t, "localhost:3000", cfg.Address)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join("data", "tinylink.json"), cfg.MemoryFile)
	assert.Equal(t, "", cfg.DatabaseDSN)
	assert.Equal(t, "", cfg.GRPCAddress)
	assert.False(t, cfg.EnableHTTPS)
	assert.Equal(t, 7, cfg.CodeLength)
	assert.Equal(t, 20, cfg.CodeAttempts)
}

func TestConfigWithFlags(t *testing.T) {
	cfg := NewFromArgs("tinylink", []string{"-a", "localhost:9090", "-f", "links.json", "-g", ":9091", "-s", "-code-length", "8"})

	assert.Equal(t, "localhost:9090", cfg.Address)
	assert.Equal(t, "links.json", cfg.MemoryFile)
	assert.Equal(t, ":9091", cfg.GRPCAddress)
	assert.True(t, cfg.EnableHTTPS)
	assert.Equal(t, 8, cfg.CodeLength)
}

func TestConfigWithEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("BASE_URL", "http://localhost:9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FILE_STORAGE_PATH", "test_links.json")
	t.Setenv("DATABASE_DSN", "test_dsn")
	t.Setenv("GRPC_ADDRESS", ":9091")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("CODE_ATTEMPTS", "5")

	cfg := NewFromArgs("tinylink", []string{"-a", "localhost:1111"})

	assert.Equal(t, "localhost:9090", cfg.Address)
	assert.Equal(t, "http://localhost:9090", cfg.URL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test_links.json", cfg.MemoryFile)
	assert.Equal(t, "test_dsn", cfg.DatabaseDSN)
	assert.Equal(t, ":9091", cfg.GRPCAddress)
	assert.True(t, cfg.EnableHTTPS)
	assert.Equal(t, 5, cfg.CodeAttempts)
}

func TestConfigPort(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg := NewFromArgs("tinylink", nil)
	assert.Equal(t, ":8081", cfg.Address)
}

func TestConfigDatabaseURL(t *testing.T) {
	tests := []struct {
		name        string
		databaseURL string
		want        string
	}{
		{name: "sqlite prefix and suffix", databaseURL: "sqlite:./store.db", want: filepath.Join("store", "tinylink.json")},
		{name: "plain directory", databaseURL: "/var/lib/tinylink", want: filepath.Join("/var/lib/tinylink", "tinylink.json")},
		{name: "current directory", databaseURL: "sqlite:.", want: filepath.Join("data", "tinylink.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)

			cfg := NewFromArgs("tinylink", nil)
			assert.Equal(t, tt.want, cfg.MemoryFile)
		})
	}
}

func TestConfigFileStoragePathWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:./store.db")
	t.Setenv("FILE_STORAGE_PATH", "explicit.json")

	cfg := NewFromArgs("tinylink", nil)
	assert.Equal(t, "explicit.json", cfg.MemoryFile)
}
