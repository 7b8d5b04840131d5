package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-go/opac/opacity"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(TargetEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(TargetEnv, "")
	path := writeFile(t, "config.yaml", "target: Slack\npercent: 60\ninterval: 250ms\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Slack", cfg.Target)
	assert.Equal(t, 60, cfg.Percent)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(TargetEnv, "")
	path := writeFile(t, "config.yaml", "")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "config.yaml", "tagret: Slack\n")

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestLoadRejectsBadPercent(t *testing.T) {
	t.Setenv(TargetEnv, "")
	path := writeFile(t, "config.yaml", "percent: 150\n")

	_, err := Load(path, "")
	assert.ErrorIs(t, err, opacity.ErrInvalidPercent)
}

func TestEnvOverridesTarget(t *testing.T) {
	t.Setenv(TargetEnv, "Discord")
	path := writeFile(t, "config.yaml", "target: Slack\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Discord", cfg.Target)
}

func TestDotEnvFile(t *testing.T) {
	t.Setenv(TargetEnv, "")
	os.Unsetenv(TargetEnv)
	env := writeFile(t, ".env", TargetEnv+"=Teams\n")

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "Teams", cfg.Target)
}

func TestMissingDotEnvFileIsIgnored(t *testing.T) {
	t.Setenv(TargetEnv, "")

	cfg, err := Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTarget, cfg.Target)
}
