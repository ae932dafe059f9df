package engine

import (
	"runtime"

	"github.com/spaghettifunk/brickforge/engine/core"
)

type ApplicationConfig struct {
	// The application name used in log lines and exported object names.
	Name     string
	LogLevel core.LogLevel
	// Number of workers used for batch generation. Zero means one per CPU.
	Workers int
	// Relative config paths are resolved against this directory.
	AssetBasePath string
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:     "brickforge",
		LogLevel: core.InfoLevel,
		Workers:  runtime.NumCPU(),
	}
}
