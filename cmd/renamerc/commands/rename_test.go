package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
)

func testOpts() *opts.RootOpts {
	return &opts.RootOpts{
		Config:     &config.Config{},
		UserLogger: log.New(io.Discard, zerolog.Disabled),
	}
}

// genTestProject creates the canonical fixture:
//
//	test-project
//	├── test-dir-1
//	│   ├── test-dir-test-project
//	│   │   └── test-file-test-project.txt  ("test_project")
//	│   └── test-file-2.txt                 ("Test Project")
//	└── test-file-1.txt                     ("test-project")
func genTestProject(t *testing.T, dir string) string {
	t.Helper()
	root := filepath.Join(dir, "test-project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "test-dir-1", "test-dir-test-project"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "test-file-1.txt"), []byte("test-project"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "test-dir-1", "test-file-2.txt"), []byte("Test Project"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "test-dir-1", "test-dir-test-project", "test-file-test-project.txt"),
		[]byte("test_project"), 0644))
	return root
}

func TestRenameCmd(t *testing.T) {
	tmpDir := t.TempDir()
	source := genTestProject(t, tmpDir)

	cmd := NewRenameCmd(testOpts())
	cmd.SetArgs([]string{"--input", source, "--name", "copied-project"})
	require.NoError(t, cmd.Execute())

	dest := filepath.Join(tmpDir, "copied-project")
	require.DirExists(t, dest)
	assert.DirExists(t, filepath.Join(dest, "test-dir-1"))
	assert.DirExists(t, filepath.Join(dest, "test-dir-1", "test-dir-copied-project"))

	content, err := os.ReadFile(filepath.Join(dest, "test-file-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "copied-project", string(content))

	content, err = os.ReadFile(filepath.Join(dest, "test-dir-1", "test-file-2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Copied Project", string(content))

	content, err = os.ReadFile(filepath.Join(dest, "test-dir-1", "test-dir-copied-project", "test-file-copied-project.txt"))
	require.NoError(t, err)
	assert.Equal(t, "copied_project", string(content))
}

func TestRenameCmd_MissingFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "missing_input",
			args:        []string{"--name", "copied-project"},
			errContains: "input is required",
		},
		{
			name:        "missing_name",
			args:        []string{"--input", "somewhere"},
			errContains: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRenameCmd(testOpts())
			cmd.SetArgs(tt.args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestRenameCmd_ConfigFallback(t *testing.T) {
	tmpDir := t.TempDir()
	source := genTestProject(t, tmpDir)

	// Flags absent, values come from the loaded config
	o := testOpts()
	o.Config.Input = source
	o.Config.NewName = "copied-project"

	cmd := NewRenameCmd(o)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.DirExists(t, filepath.Join(tmpDir, "copied-project"))
}

func TestPreviewCmd(t *testing.T) {
	tmpDir := t.TempDir()
	source := genTestProject(t, tmpDir)

	cmd := NewPreviewCmd(testOpts())
	cmd.SetArgs([]string{"--input", source, "--name", "copied-project"})
	require.NoError(t, cmd.Execute())

	// Preview never writes
	assert.NoDirExists(t, filepath.Join(tmpDir, "copied-project"))
}

func TestCasesCmd(t *testing.T) {
	cmd := NewCasesCmd(testOpts())
	cmd.SetArgs([]string{"my-project"})
	require.NoError(t, cmd.Execute())
}

func TestCasesCmd_EmptyName(t *testing.T) {
	cmd := NewCasesCmd(testOpts())
	cmd.SetArgs([]string{""})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detecting name")
}
