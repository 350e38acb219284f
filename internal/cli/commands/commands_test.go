// Package commands_test provides tests for CLI command creation.
package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/dbscript/internal/cli/config"
)

func TestNewBuildCommand(t *testing.T) {
	cmd := NewBuildCommand()

	assert.Equal(t, "build", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
	assert.NotNil(t, cmd.RunE)
}

func TestNewInitCommandFlags(t *testing.T) {
	cmd := NewInitCommand()

	flags := []string{"force"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestGetConfig_FallsBackToEnv(t *testing.T) {
	config.ResetConfig()
	t.Setenv("DBSCRIPT_OUTPUT_DIR", "/srv/sql")
	t.Setenv("DBSCRIPT_VERIFY", "true")
	t.Setenv("DBSCRIPT_PLAIN", "true")

	cfg := getConfig()

	assert.Equal(t, "/srv/sql", cfg.OutputDir)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.Plain)
	assert.False(t, cfg.Preview)
}

func TestGetConfig_Defaults(t *testing.T) {
	config.ResetConfig()
	t.Setenv("DBSCRIPT_OUTPUT_DIR", "")

	cfg := getConfig()
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(nil))
	assert.False(t, isTerminal("not a file"))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	assert.False(t, isTerminal(f), "regular files are not terminals")
}
