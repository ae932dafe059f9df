package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spaghettifunk/brickforge/engine/assets"
	"github.com/spaghettifunk/brickforge/engine/assets/loaders"
	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/export"
	"github.com/spaghettifunk/brickforge/engine/geometry"
	"github.com/spaghettifunk/brickforge/engine/mesh"
	"github.com/spaghettifunk/brickforge/engine/resources"
	"github.com/spaghettifunk/brickforge/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is ready to generate
	EngineStageInitialized
	// Engine is watching a config file and regenerating on change
	EngineStageWatching
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

var ErrShuttingDown = errors.New("engine is shutting down")

// Brick is a generated mesh together with what the host needs to store it.
type Brick struct {
	ID      string
	Name    string
	Config  geometry.BrickConfig
	Mesh    mesh.MeshInfo
	Elapsed time.Duration
}

// ExportOptions describes the brick to an exporter.
func (b *Brick) ExportOptions() export.Options {
	return export.Options{
		ID:      b.ID,
		Name:    b.Name,
		Shading: b.Config.Shading,
	}
}

type Engine struct {
	config       *ApplicationConfig
	resources    *systems.ResourceSystem
	mutex        sync.Mutex
	currentStage Stage
}

func New(config *ApplicationConfig) (*Engine, error) {
	if config == nil {
		config = DefaultApplicationConfig()
	}
	if config.Workers <= 0 {
		config.Workers = DefaultApplicationConfig().Workers
	}
	core.SetLogLevel(config.LogLevel)

	rs, err := systems.NewResourceSystem(systems.ResourceSystemConfig{
		MaxLoaderCount: 4,
		AssetBasePath:  config.AssetBasePath,
	})
	if err != nil {
		return nil, err
	}
	if err := rs.RegisterLoader(resources.ResourceTypeBrickConfig, &loaders.BrickConfigLoader{}); err != nil {
		return nil, err
	}

	return &Engine{
		config:       config,
		resources:    rs,
		currentStage: EngineStageInitialized,
	}, nil
}

func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.currentStage = s
}

// Generate validates cfg, builds the brick and applies its placement.
func (e *Engine) Generate(cfg geometry.BrickConfig) (*Brick, error) {
	if e.Stage() == EngineStageShuttingDown {
		return nil, ErrShuttingDown
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		core.LogError("brick %q rejected: %s", cfg.Name, err)
		return nil, err
	}

	clock := core.NewClock()
	clock.Start()

	m := geometry.GenerateBrick(cfg)
	if !cfg.Placement.IsIdentity() {
		m.Transform(cfg.Placement.Matrix())
	}
	if err := m.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	clock.Stop()

	b := &Brick{
		ID:      core.NewMeshID(),
		Name:    cfg.Name,
		Config:  cfg,
		Mesh:    m,
		Elapsed: clock.Elapsed(),
	}
	core.LogInfo("generated %s %dx%dx%d: %d vertices, %d faces in %s",
		b.Name, cfg.Width, cfg.Depth, cfg.Height, m.VertexCount(), m.FaceCount(), b.Elapsed)
	return b, nil
}

// GenerateFromFile loads a brick config file and generates it. overrides,
// when not nil, is applied to the loaded config before generation.
func (e *Engine) GenerateFromFile(path string, overrides func(*geometry.BrickConfig)) (*Brick, error) {
	r, err := e.resources.Load(path, nil)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	cfg := r.Data.(geometry.BrickConfig)
	if err := e.resources.Unload(r); err != nil {
		return nil, err
	}
	if overrides != nil {
		overrides(&cfg)
	}
	return e.Generate(cfg)
}

// GenerateBatch builds independent bricks in parallel. Results keep the
// order of cfgs; a failed brick leaves a nil entry and its error is joined
// into the returned error.
func (e *Engine) GenerateBatch(ctx context.Context, cfgs []geometry.BrickConfig) ([]*Brick, error) {
	js, err := systems.NewJobSystem(e.config.Workers, len(cfgs))
	if err != nil {
		return nil, err
	}

	results := make([]*Brick, len(cfgs))
	errs := make([]error, len(cfgs))
	for i, cfg := range cfgs {
		js.Submit(systems.JobTask{
			InputParams: cfg,
			OnStart: func(params interface{}) (interface{}, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return e.Generate(params.(geometry.BrickConfig))
			},
			OnComplete: func(result interface{}) {
				results[i] = result.(*Brick)
			},
			OnFailure: func(err error) {
				errs[i] = fmt.Errorf("brick %d (%s): %w", i, cfgs[i].Name, err)
			},
		})
	}
	if err := js.Shutdown(); err != nil {
		return results, err
	}
	return results, errors.Join(errs...)
}

// Export writes b to path, choosing the format from the extension and
// creating parent directories as needed.
func (e *Engine) Export(b *Brick, path string) error {
	w, err := export.ForPath(path)
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f, &b.Mesh, b.ExportOptions()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	core.LogInfo("wrote %s", path)
	return nil
}

// ExportTo writes b to an arbitrary writer in the named format.
func (e *Engine) ExportTo(b *Brick, out io.Writer, format string) error {
	w, err := export.ForFormat(format)
	if err != nil {
		return err
	}
	return w.Write(out, &b.Mesh, b.ExportOptions())
}

// Watch regenerates and re-exports the brick every time configPath changes,
// until ctx is cancelled. Bad edits are logged and skipped; the last good
// output stays on disk.
func (e *Engine) Watch(ctx context.Context, configPath, outPath string, overrides func(*geometry.BrickConfig)) error {
	rebuild := func(path string) {
		b, err := e.GenerateFromFile(path, overrides)
		if err != nil {
			return
		}
		if err := e.Export(b, outPath); err != nil {
			core.LogError(err.Error())
		}
	}

	w, err := assets.NewWatcher(configPath, assets.DefaultDebounce, rebuild)
	if err != nil {
		return err
	}

	rebuild(configPath)

	e.setStage(EngineStageWatching)
	core.LogInfo("watching %s", w.Path())
	err = w.Run(ctx)
	if e.Stage() == EngineStageWatching {
		e.setStage(EngineStageInitialized)
	}
	return err
}

func (e *Engine) Shutdown() error {
	e.setStage(EngineStageShuttingDown)
	return nil
}
