package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
		want func(t *testing.T, got string)
	}{
		{
			name: "flag wins over env",
			flag: "/tmp/flag-config",
			env:  "/tmp/env-config",
			want: func(t *testing.T, got string) {
				assert.Equal(t, filepath.FromSlash("/tmp/flag-config"), got)
			},
		},
		{
			name: "env wins when flag empty",
			env:  "/tmp/env-config",
			want: func(t *testing.T, got string) {
				assert.Equal(t, filepath.FromSlash("/tmp/env-config"), got)
			},
		},
		{
			name: "platform default when nothing set",
			want: func(t *testing.T, got string) {
				assert.Contains(t, got, "patternbook")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvConfigDir, tt.env)
			} else {
				t.Setenv(EnvConfigDir, "")
			}
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

func TestResolveJournalDirPrecedence(t *testing.T) {
	t.Setenv(EnvJournalDir, "/tmp/env-journal")

	got, err := ResolveJournalDir("/tmp/flag-journal", "/tmp/config-journal")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/flag-journal"), got)

	got, err = ResolveJournalDir("", "/tmp/config-journal")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/config-journal"), got)

	got, err = ResolveJournalDir("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/env-journal"), got)
}

func TestDefaultDirsOnLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux-specific")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	config, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-config/patternbook", config)

	journal, err := DefaultJournalDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-data/patternbook", journal)
}

func TestDefaultConfigDirFallsBackToHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux-specific")
	}
	t.Setenv("XDG_CONFIG_HOME", "")

	restore := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/quant", nil }
	defer func() { platformDir.homeDir = restore }()

	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/quant/.config/patternbook", got)
}
