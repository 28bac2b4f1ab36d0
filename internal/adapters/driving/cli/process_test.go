package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureText = `Introduction
In this paper, we propose a method for classifying academic documents using term statistics. The method was evaluated on a corpus of student theses collected from two campuses. The results show that the approach achieves strong accuracy on held-out documents.

References
[1] Smith, J. (2020). Document classification methods. Journal of Computing Research, 14(2), 101-118.
[2] Tan, W. (2021). Text mining for student theses. Proceedings of the Text Analytics Conference.
`

// writeFixture drops a txt document into a temp dir and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thesis.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixtureText), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	processJSON = false
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestProcessCmd_Use(t *testing.T) {
	assert.Equal(t, "process [files...]", processCmd.Use)
}

func TestProcessCmd_RequiresArgs(t *testing.T) {
	_, err := runCommand(t, "process")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestProcessCmd_TextOutput(t *testing.T) {
	path := writeFixture(t)

	out, err := runCommand(t, "process", path)

	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "Language: English")
	assert.Contains(t, out, "References: 2")
	assert.Contains(t, out, "[1] Smith, J. (2020)")
}

func TestProcessCmd_JSONOutput(t *testing.T) {
	path := writeFixture(t)

	out, err := runCommand(t, "process", "--json", path)

	require.NoError(t, err)
	assert.Contains(t, out, `"language": "en"`)
	assert.Contains(t, out, `"ordinal": "1"`)
	assert.Contains(t, out, `"embedded": false`)
}

func TestProcessCmd_UnsupportedFileReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "notes.epub")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0644))
	good := writeFixture(t)

	out, err := runCommand(t, "process", bad, good)

	require.NoError(t, err)
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "unsupported format")
	assert.Contains(t, out, "References: 2")
}

func TestProcessCmd_MissingFileReportedNotFatal(t *testing.T) {
	out, err := runCommand(t, "process", filepath.Join(t.TempDir(), "missing.txt"))

	require.NoError(t, err)
	assert.Contains(t, out, "FAILED")
}
