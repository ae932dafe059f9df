package systems

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spaghettifunk/brickforge/engine/assets"
	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/resources"
)

var (
	ErrLoaderExists   = errors.New("loader already registered")
	ErrNoLoader       = errors.New("no loader registered")
	ErrTooManyLoaders = errors.New("loader limit reached")
)

/** @brief The configuration for the resource system */
type ResourceSystemConfig struct {
	/** @brief The maximum number of loaders that can be registered with this system. */
	MaxLoaderCount uint32
	/** @brief The base path relative file names are resolved against. */
	AssetBasePath string
}

type ResourceSystem struct {
	config  ResourceSystemConfig
	mutex   sync.RWMutex
	loaders map[resources.ResourceType]assets.Loader
}

func NewResourceSystem(config ResourceSystemConfig) (*ResourceSystem, error) {
	if config.MaxLoaderCount == 0 {
		err := fmt.Errorf("failed to run NewResourceSystem because config.MaxLoaderCount==0")
		core.LogError(err.Error())
		return nil, err
	}

	core.LogDebug("Resource system initialized with base path '%s'.", config.AssetBasePath)

	return &ResourceSystem{
		config:  config,
		loaders: make(map[resources.ResourceType]assets.Loader, config.MaxLoaderCount),
	}, nil
}

// RegisterLoader binds loader to a resource type. A type takes one loader.
func (rs *ResourceSystem) RegisterLoader(rt resources.ResourceType, loader assets.Loader) error {
	rs.mutex.Lock()
	defer rs.mutex.Unlock()

	if _, ok := rs.loaders[rt]; ok {
		core.LogError("Loader of type %s already exists and will not be registered.", rt)
		return fmt.Errorf("%s: %w", rt, ErrLoaderExists)
	}
	if uint32(len(rs.loaders)) >= rs.config.MaxLoaderCount {
		return ErrTooManyLoaders
	}
	rs.loaders[rt] = loader
	core.LogDebug("Loader for %s registered.", rt)
	return nil
}

// Load classifies name by its extension and hands it to the matching loader.
func (rs *ResourceSystem) Load(name string, params interface{}) (*resources.Resource, error) {
	path := name
	if rs.config.AssetBasePath != "" && !filepath.IsAbs(path) {
		path = filepath.Join(rs.config.AssetBasePath, path)
	}

	rt := resources.ResourceTypeFor(path)
	rs.mutex.RLock()
	l, ok := rs.loaders[rt]
	rs.mutex.RUnlock()
	if !ok {
		core.LogError("No loader for type %s was found.", rt)
		return nil, fmt.Errorf("%s (%s): %w", name, rt, ErrNoLoader)
	}
	return l.Load(path, rt, params)
}

func (rs *ResourceSystem) Unload(r *resources.Resource) error {
	if r == nil {
		return nil
	}
	rs.mutex.RLock()
	l, ok := rs.loaders[r.Type]
	rs.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", r.Type, ErrNoLoader)
	}
	return l.Unload(r)
}
