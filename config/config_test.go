package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ESTEL_CONFIG", "ESTEL_COLOR", "ESTEL_PROMPT", "ESTEL_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
prompt: "> "
color: never
context_lines: 3
echo: false
log_level: debug
exit_commands: [exit]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Prompt:       "> ",
		Color:        "never",
		ContextLines: 3,
		Echo:         false,
		LogLevel:     "debug",
		ExitCommands: []string{"exit"},
	}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "color: always\n"))
	require.NoError(t, err)
	want := Default()
	want.Color = "always"
	assert.Equal(t, want, cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ESTEL_COLOR", "never")
	t.Setenv("ESTEL_PROMPT", "$ ")
	t.Setenv("ESTEL_LOG_LEVEL", "error")

	cfg, err := Load(writeConfig(t, "color: always\nprompt: '% '\n"))
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "$ ", cfg.Prompt)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, lvl)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "malformed", content: "prompt: [", errMsg: "parse config"},
		{name: "bad color", content: "color: rainbow", errMsg: `unknown color mode "rainbow"`},
		{name: "negative context", content: "context_lines: -1", errMsg: "negative context_lines -1"},
		{name: "bad level", content: "log_level: loud", errMsg: `unknown log_level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestPath(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "explicit.yaml", Path("explicit.yaml"))
	assert.Equal(t, filepath.Join(home, FileName), Path(""))

	t.Setenv("ESTEL_CONFIG", "/etc/estel.yaml")
	assert.Equal(t, "/etc/estel.yaml", Path(""))
	assert.Equal(t, "explicit.yaml", Path("explicit.yaml"))
}

func TestIsExit(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.IsExit("!q"))
	assert.True(t, cfg.IsExit("  !quit\r\n"))
	assert.False(t, cfg.IsExit("print 1"))
	assert.False(t, cfg.IsExit(""))
}
