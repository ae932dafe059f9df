package systems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/brickforge/engine/resources"
)

type stubLoader struct {
	loaded   []string
	unloaded int
}

func (s *stubLoader) Load(path string, rt resources.ResourceType, params interface{}) (*resources.Resource, error) {
	s.loaded = append(s.loaded, path)
	return &resources.Resource{Type: rt, Name: filepath.Base(path), FullPath: path, Data: params}, nil
}

func (s *stubLoader) Unload(r *resources.Resource) error {
	s.unloaded++
	r.Data = nil
	return nil
}

func TestResourceSystemRejectsZeroLoaders(t *testing.T) {
	_, err := NewResourceSystem(ResourceSystemConfig{})
	assert.Error(t, err)
}

func TestResourceSystemDispatchByExtension(t *testing.T) {
	base := t.TempDir()
	rs, err := NewResourceSystem(ResourceSystemConfig{MaxLoaderCount: 2, AssetBasePath: base})
	require.NoError(t, err)

	l := &stubLoader{}
	require.NoError(t, rs.RegisterLoader(resources.ResourceTypeBrickConfig, l))
	assert.ErrorIs(t, rs.RegisterLoader(resources.ResourceTypeBrickConfig, l), ErrLoaderExists)

	r, err := rs.Load("brick.toml", 7)
	require.NoError(t, err)
	assert.Equal(t, resources.ResourceTypeBrickConfig, r.Type)
	assert.Equal(t, filepath.Join(base, "brick.toml"), r.FullPath)
	assert.Equal(t, 7, r.Data)

	abs := filepath.Join(os.TempDir(), "other.yaml")
	_, err = rs.Load(abs, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "brick.toml"), abs}, l.loaded)

	_, err = rs.Load("brick.obj", nil)
	assert.ErrorIs(t, err, ErrNoLoader)

	require.NoError(t, rs.Unload(r))
	assert.Equal(t, 1, l.unloaded)
	assert.Nil(t, r.Data)
	assert.NoError(t, rs.Unload(nil))
}

func TestResourceSystemLoaderLimit(t *testing.T) {
	rs, err := NewResourceSystem(ResourceSystemConfig{MaxLoaderCount: 1})
	require.NoError(t, err)
	require.NoError(t, rs.RegisterLoader(resources.ResourceTypeBrickConfig, &stubLoader{}))
	assert.ErrorIs(t, rs.RegisterLoader(resources.ResourceTypeMesh, &stubLoader{}), ErrTooManyLoaders)
}
