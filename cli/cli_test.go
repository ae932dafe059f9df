package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/brickforge/engine/core"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	w, d, h, err := parseSize("2x4x1")
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 4, 1}, [3]int{w, d, h})

	w, d, h, err = parseSize(" 1X1X3 ")
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 3}, [3]int{w, d, h})

	_, _, _, err = parseSize("2x4")
	assert.ErrorIs(t, err, core.ErrDegenerateInput)

	_, _, _, err = parseSize("2xax1")
	assert.Error(t, err)
}

func TestGenerateToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "b.obj")
	_, err := run(t, "generate", "--width", "1", "--depth", "1", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# brickforge 42 vertices 50 faces"))
}

func TestGenerateToStdout(t *testing.T) {
	out, err := run(t, "generate", "--width", "2", "--depth", "2", "-o", "-", "--format", "obj")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# brickforge 168 vertices 194 faces"))
}

func TestGenerateConfigWithOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "brick.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width = 2\ndepth = 2\nheight = 1\nname = \"plate\"\n"), 0644))

	// width from the flag wins, depth stays from the file
	out, err := run(t, "info", "-c", cfgPath, "--width", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "name:      plate")
	assert.Contains(t, out, "size:      1x2x1")
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := run(t, "generate", "--width", "0", "-o", filepath.Join(t.TempDir(), "b.obj"))
	assert.ErrorIs(t, err, core.ErrDegenerateInput)

	_, err = run(t, "generate", "-o", filepath.Join(t.TempDir(), "b.ply"))
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:  368 (predicted 368)")
	assert.Contains(t, out, "faces:     410 (predicted 410)")
	assert.Contains(t, out, "size:      2x4x1")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "batch", "--sizes", "1x1x1,2x2x1", "--out-dir", dir, "--format", "stl", "--workers", "2")
	require.NoError(t, err)

	for _, name := range []string{"brick_1x1x1.stl", "brick_2x2x1.stl"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "solid "), name)
	}
}

func TestBatchKeepsGoodBricks(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "batch", "--sizes", "1x1x1,0x2x1", "--out-dir", dir)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)

	_, statErr := os.Stat(filepath.Join(dir, "brick_1x1x1.obj"))
	assert.NoError(t, statErr)
}

func TestWatchRequiresConfig(t *testing.T) {
	_, err := run(t, "watch", "-o", filepath.Join(t.TempDir(), "b.obj"))
	assert.Error(t, err)
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "info")
	assert.ErrorIs(t, err, core.ErrUnknownLogLevel)
}
