package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runConfigCommand pins the config dir so assertions can reach the file.
func runConfigCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config-dir", dir}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigShow_Defaults(t *testing.T) {
	out, err := runConfigCommand(t, t.TempDir(), "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Similarity threshold:   0.30")
	assert.Contains(t, out, "Not configured (offline fallback active)")
}

func TestConfigInit_WritesFile(t *testing.T) {
	dir := t.TempDir()

	out, err := runConfigCommand(t, dir, "config", "init")

	require.NoError(t, err)
	path := filepath.Join(dir, "config.toml")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "similarity_threshold")
	assert.Contains(t, string(data), "[pipeline]")
}

func TestConfigInit_PreservesExistingValues(t *testing.T) {
	dir := t.TempDir()
	existing := `
[pipeline]
max_references = 25
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(existing), 0600))

	_, err := runConfigCommand(t, dir, "config", "init")
	require.NoError(t, err)

	out, err := runConfigCommand(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Max references:         25")
}

func TestConfigCmd_DefaultsToShow(t *testing.T) {
	out, err := runConfigCommand(t, t.TempDir(), "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}
