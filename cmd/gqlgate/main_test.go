package main

import (
	"os"
	"testing"

	"gqlgate/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPrecedence(t *testing.T) {
	// Create a temporary config file
	content := []byte(`
listen: ":7070"
db: "sqlite::memory:"
log-level: "debug"
graphiql: true
ts-hostname: "config-host"
`)

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	tests := []struct {
		name    string
		args    []string
		wantCfg config.Config
		wantErr bool
	}{
		{
			name: "config file only",
			args: []string{"--config", tmpfile.Name(), "--test-mode"},
			wantCfg: config.Config{
				Listen:     ":7070",
				DB:         "sqlite::memory:",
				LogLevel:   "debug",
				GraphiQL:   true,
				TSHostname: "config-host",
			},
		},
		{
			name: "flags override config",
			args: []string{
				"--config", tmpfile.Name(),
				"--listen", ":9090",
				"--db", "postgres://localhost:5432/test",
				"--log-level", "warn",
				"--ts-hostname", "flag-host",
				"--test-mode",
			},
			wantCfg: config.Config{
				Listen:     ":9090",
				DB:         "postgres://localhost:5432/test",
				LogLevel:   "warn",
				GraphiQL:   true,
				TSHostname: "flag-host",
			},
		},
		{
			name: "flags only",
			args: []string{
				"--listen", ":6060",
				"--log-level", "error",
				"--pretty",
				"--test-mode",
			},
			wantCfg: config.Config{
				Listen:     ":6060",
				DB:         "sqlite:gqlgate.db",
				LogLevel:   "error",
				Pretty:     true,
				TSHostname: "gqlgate",
			},
		},
		{
			name:    "invalid config file",
			args:    []string{"--config", "nonexistent.yaml", "--test-mode"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			args:    []string{"--log-level", "loud", "--test-mode"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global state between runs
			viper.Reset()
			cfg = config.Config{}
			configFile = ""

			cmd := newRootCmd()
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCfg.Listen, cfg.Listen)
			assert.Equal(t, tt.wantCfg.DB, cfg.DB)
			assert.Equal(t, tt.wantCfg.LogLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantCfg.Pretty, cfg.Pretty)
			assert.Equal(t, tt.wantCfg.GraphiQL, cfg.GraphiQL)
			assert.Equal(t, tt.wantCfg.TSHostname, cfg.TSHostname)
		})
	}
}
