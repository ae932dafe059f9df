package resources

import (
	"path/filepath"
	"strings"
)

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Files the engine does not know how to load. */
	ResourceTypeNone ResourceType = iota
	/** @brief A brick parameter file (.toml, .yaml, .yml). */
	ResourceTypeBrickConfig
	/** @brief A generated mesh written by an exporter (.obj, .stl, .json). */
	ResourceTypeMesh
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeBrickConfig:
		return "brick-config"
	case ResourceTypeMesh:
		return "mesh"
	default:
		return "none"
	}
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The resource type. */
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the file the resource was read from, in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

// ResourceTypeFor classifies a file by its extension.
func ResourceTypeFor(path string) ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return ResourceTypeBrickConfig
	case ".obj", ".stl", ".json":
		return ResourceTypeMesh
	default:
		return ResourceTypeNone
	}
}
