package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ConfigFileFlag(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "test-project")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "test-file-1.txt"), []byte("test-project"), 0644))

	// Input and name come from the file passed with -c, not from flags
	cfgPath := filepath.Join(tmpDir, "custom.yaml")
	cfgBody := "input: \"" + source + "\"\nnew_name: copied-project\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0644))

	rootCmd, _ := newRootCmd()
	rootCmd.SetArgs([]string{"rename", "-c", cfgPath})
	require.NoError(t, rootCmd.Execute())

	dest := filepath.Join(tmpDir, "copied-project")
	require.DirExists(t, dest)
	content, err := os.ReadFile(filepath.Join(dest, "test-file-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "copied-project", string(content))
}

func TestRootCmd_DebugFlag(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	rootCmd, o := newRootCmd()
	rootCmd.SetArgs([]string{"cases", "my-project", "-d"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	require.NotNil(t, o.UserLogger)
}
