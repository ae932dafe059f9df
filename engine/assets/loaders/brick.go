package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/geometry"
	"github.com/spaghettifunk/brickforge/engine/resources"
)

var ErrNotBrickConfig = errors.New("not a brick config resource")

// BrickConfigLoader reads brick parameter files. Keys missing from the
// file keep the value of the base config: params when it is a
// geometry.BrickConfig, the defaults otherwise.
type BrickConfigLoader struct{}

func (bl *BrickConfigLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	if assetType != resources.ResourceTypeBrickConfig {
		return nil, fmt.Errorf("%s is %s: %w", path, assetType, ErrNotBrickConfig)
	}

	base := geometry.DefaultBrickConfig()
	if p, ok := params.(geometry.BrickConfig); ok {
		base = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parseBrickConfig(filepath.Ext(path), data, base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &resources.Resource{
		Type:     resources.ResourceTypeBrickConfig,
		Name:     cfg.Name,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     cfg,
	}, nil
}

func (bl *BrickConfigLoader) Unload(r *resources.Resource) error {
	if r != nil {
		r.Data = nil
	}
	return nil
}

func parseBrickConfig(ext string, data []byte, cfg geometry.BrickConfig) (geometry.BrickConfig, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				core.LogWarn("unknown keys in brick config:\n%s", strict.String())
			}
			return cfg, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the base config untouched
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("extension %q: %w", ext, core.ErrUnknownFormat)
	}
	return cfg, nil
}

// LoadBrickConfig reads a brick config file on top of the defaults.
func LoadBrickConfig(path string) (geometry.BrickConfig, error) {
	bl := &BrickConfigLoader{}
	r, err := bl.Load(path, resources.ResourceTypeFor(path), nil)
	if err != nil {
		return geometry.BrickConfig{}, err
	}
	return r.Data.(geometry.BrickConfig), nil
}

// SaveBrickConfig writes cfg in the format implied by the extension.
func SaveBrickConfig(path string, cfg geometry.BrickConfig) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		err = fmt.Errorf("extension %q: %w", filepath.Ext(path), core.ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
