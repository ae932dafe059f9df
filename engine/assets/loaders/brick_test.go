package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/geometry"
	"github.com/spaghettifunk/brickforge/engine/resources"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "plate.toml", `
name = "plate"
width = 4
depth = 6
stud_segments = 24

[shading]
smooth = true
auto_smooth_angle = 45.0
`)
	cfg, err := LoadBrickConfig(path)
	require.NoError(t, err)

	want := geometry.DefaultBrickConfig()
	want.Name = "plate"
	want.Width = 4
	want.Depth = 6
	want.StudSegments = 24
	want.Shading = geometry.Shading{Smooth: true, AutoSmoothAngle: 45}
	assert.Equal(t, want, cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "tall.yaml", `
height: 3
tube_segments: 16
placement:
  x: 1.5
  rotation_z: 90
`)
	cfg, err := LoadBrickConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Height)
	assert.Equal(t, 16, cfg.TubeSegments)
	assert.Equal(t, float32(1.5), cfg.Placement.X)
	assert.Equal(t, float32(90), cfg.Placement.RotationZ)
	assert.Equal(t, 2, cfg.Width, "default kept")
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := LoadBrickConfig(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, geometry.DefaultBrickConfig(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := LoadBrickConfig(writeFile(t, "typo.toml", "widht = 3\n"))
	assert.Error(t, err)

	_, err = LoadBrickConfig(writeFile(t, "typo.yaml", "widht: 3\n"))
	assert.Error(t, err)
}

func TestLoadWithBaseParams(t *testing.T) {
	base := geometry.DefaultBrickConfig()
	base.Width = 8
	path := writeFile(t, "depth.toml", "depth = 2\n")

	r, err := (&BrickConfigLoader{}).Load(path, resources.ResourceTypeBrickConfig, base)
	require.NoError(t, err)
	cfg := r.Data.(geometry.BrickConfig)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, uint64(len("depth = 2\n")), r.DataSize)

	require.NoError(t, (&BrickConfigLoader{}).Unload(r))
	assert.Nil(t, r.Data)
}

func TestLoadWrongType(t *testing.T) {
	_, err := (&BrickConfigLoader{}).Load("x.obj", resources.ResourceTypeMesh, nil)
	assert.ErrorIs(t, err, ErrNotBrickConfig)

	_, err = LoadBrickConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := geometry.DefaultBrickConfig()
	cfg.Name = "saved"
	cfg.Width = 3
	cfg.Placement.Z = 2

	for _, name := range []string{"saved.toml", "saved.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveBrickConfig(path, cfg))
		got, err := LoadBrickConfig(path)
		require.NoError(t, err, name)
		assert.Equal(t, cfg, got, name)
	}

	err := SaveBrickConfig(filepath.Join(t.TempDir(), "x.ini"), cfg)
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}
