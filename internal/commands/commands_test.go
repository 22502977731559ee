package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedb/byterange-go/internal/commands"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	command := commands.NewRootCmd()
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", "--size", "10000", "bytes=500-600,601-999")
	require.NoError(t, err)
	assert.Equal(t, "500 101 bytes 500-600/10000\n601 399 bytes 601-999/10000\n", out)
}

func TestParseIgnored(t *testing.T) {
	out, err := run(t, "parse", "--size", "200", "invalid input")
	require.NoError(t, err)
	assert.Equal(t, "ignored\n", out)
}

func TestParseUnsatisfiable(t *testing.T) {
	out, err := run(t, "parse", "-s", "10", "bytes=10-,20-30")
	require.NoError(t, err)
	assert.Equal(t, "unsatisfiable bytes */10\n", out)
}

func TestParseRequiresSize(t *testing.T) {
	_, err := run(t, "parse", "bytes=0-")
	assert.Error(t, err)
}

func TestParseWithConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "byterange.toml")
	require.NoError(t, os.WriteFile(config, []byte("cache_size = 10\nmax_cached_header = 64\n"), 0600))

	out, err := run(t, "--config", config, "parse", "--size", "10", "bytes=-15")
	require.NoError(t, err)
	assert.Equal(t, "0 10 bytes 0-9/10\n", out)

	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), "parse", "--size", "10", "bytes=0-")
	assert.ErrorContains(t, err, "failed to open configuration file")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obj"), []byte("0123456789"), 0600))

	out, err := run(t, "read", "--dir", dir, "obj", "bytes=-2,0-1")
	require.NoError(t, err)
	assert.Equal(t, "8901", out)

	out, err = run(t, "read", "--dir", dir, "obj", "bytes=x")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", out)

	_, err = run(t, "read", "--dir", dir, "missing", "bytes=0-")
	assert.Error(t, err)
}

func TestReadDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obj"), []byte("abcdef"), 0600))
	config := filepath.Join(dir, "byterange.toml")
	require.NoError(t, os.WriteFile(config, []byte("dir = \""+filepath.ToSlash(dir)+"\"\n"), 0600))

	out, err := run(t, "-c", config, "read", "obj", "bytes=2-3")
	require.NoError(t, err)
	assert.Equal(t, "cd", out)
}
