package engine

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/geometry"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(&ApplicationConfig{Name: "test", LogLevel: core.ErrorLevel, Workers: 3})
	require.NoError(t, err)
	require.Equal(t, EngineStageInitialized, e.Stage())
	return e
}

func TestGenerateDefault(t *testing.T) {
	e := newEngine(t)
	b, err := e.Generate(geometry.DefaultBrickConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "brick", b.Name)
	assert.Len(t, b.Mesh.Vertices, 368)
	assert.Len(t, b.Mesh.Faces, 410)
}

func TestGenerateRejectsDegenerateInput(t *testing.T) {
	e := newEngine(t)
	cfg := geometry.DefaultBrickConfig()
	cfg.StudSegments = 2
	_, err := e.Generate(cfg)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestGenerateAppliesPlacement(t *testing.T) {
	e := newEngine(t)
	cfg := geometry.DefaultBrickConfig()
	cfg.Placement = geometry.Placement{X: 10, Z: -1, RotationZ: 90}
	b, err := e.Generate(cfg)
	require.NoError(t, err)

	ext := b.Mesh.Extents()
	hx, hy, _ := cfg.Dimensions()
	// a quarter turn swaps the footprint axes
	assert.InDelta(t, 10-hy, ext.Min.X, 1e-4)
	assert.InDelta(t, 10+hy, ext.Max.X, 1e-4)
	assert.InDelta(t, hx, ext.Max.Y, 1e-4)
	assert.InDelta(t, -1, ext.Min.Z, 1e-4)
}

func TestGenerateAfterShutdown(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Shutdown())
	_, err := e.Generate(geometry.DefaultBrickConfig())
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestGenerateBatchKeepsOrder(t *testing.T) {
	e := newEngine(t)
	var cfgs []geometry.BrickConfig
	for w := 1; w <= 4; w++ {
		cfg := geometry.DefaultBrickConfig()
		cfg.Width, cfg.Depth = w, w
		cfgs = append(cfgs, cfg)
	}
	bad := geometry.DefaultBrickConfig()
	bad.Name = "bad"
	bad.TubeSegments = 0
	cfgs = append(cfgs, bad)

	bricks, err := e.GenerateBatch(context.Background(), cfgs)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
	assert.Contains(t, err.Error(), "bad")

	require.Len(t, bricks, 5)
	for i, b := range bricks[:4] {
		require.NotNil(t, b, "brick %d", i)
		v, f := geometry.Counts(cfgs[i])
		assert.Len(t, b.Mesh.Vertices, v)
		assert.Len(t, b.Mesh.Faces, f)
	}
	assert.Nil(t, bricks[4])
}

func TestGenerateBatchCancelled(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bricks, err := e.GenerateBatch(ctx, []geometry.BrickConfig{geometry.DefaultBrickConfig()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, bricks[0])
}

func TestExport(t *testing.T) {
	e := newEngine(t)
	b, err := e.Generate(geometry.DefaultBrickConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "brick.obj")
	require.NoError(t, e.Export(b, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# brickforge 368 vertices 410 faces"))

	assert.ErrorIs(t, e.Export(b, filepath.Join(t.TempDir(), "brick.3mf")), core.ErrUnknownFormat)

	var buf bytes.Buffer
	require.NoError(t, e.ExportTo(b, &buf, "stl"))
	assert.True(t, strings.HasPrefix(buf.String(), "solid brick_"))
}

func TestGenerateFromFile(t *testing.T) {
	e := newEngine(t)
	path := filepath.Join(t.TempDir(), "b.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 1\ndepth = 1\n"), 0644))

	b, err := e.GenerateFromFile(path, func(c *geometry.BrickConfig) { c.Name = "override" })
	require.NoError(t, err)
	assert.Equal(t, "override", b.Name)
	assert.Len(t, b.Mesh.Vertices, 42)

	_, err = e.GenerateFromFile(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}

func TestWatchRegenerates(t *testing.T) {
	e := newEngine(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "brick.toml")
	outPath := filepath.Join(dir, "out", "brick.obj")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width = 2\ndepth = 2\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx, cfgPath, outPath, nil) }()

	header := func() string {
		data, err := os.ReadFile(outPath)
		if err != nil {
			return ""
		}
		line, _, _ := strings.Cut(string(data), "\n")
		return line
	}

	require.Eventually(t, func() bool {
		return header() == "# brickforge 168 vertices 194 faces"
	}, 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return e.Stage() == EngineStageWatching
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(cfgPath, []byte("width = 1\ndepth = 1\n"), 0644))
	require.Eventually(t, func() bool {
		return header() == "# brickforge 42 vertices 50 faces"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Equal(t, EngineStageInitialized, e.Stage())
}
