package cli

import (
	"github.com/spf13/pflag"

	"github.com/spaghettifunk/brickforge/engine/assets/loaders"
	"github.com/spaghettifunk/brickforge/engine/geometry"
)

// brickFlags are the per-parameter overrides shared by the generating
// commands. Only flags the user actually set replace config values.
type brickFlags struct {
	configPath string
	cfg        geometry.BrickConfig
	flags      *pflag.FlagSet
}

func addBrickFlags(fs *pflag.FlagSet) *brickFlags {
	bf := &brickFlags{cfg: geometry.DefaultBrickConfig(), flags: fs}
	d := &bf.cfg

	fs.StringVarP(&bf.configPath, "config", "c", "", "brick config file (.toml, .yaml)")
	fs.StringVar(&d.Name, "name", d.Name, "object name")
	fs.IntVar(&d.Width, "width", d.Width, "width in studs")
	fs.IntVar(&d.Depth, "depth", d.Depth, "depth in studs")
	fs.IntVar(&d.Height, "height", d.Height, "height in bricks")
	fs.Float32Var(&d.HorizontalUnit, "horizontal-unit", d.HorizontalUnit, "stud pitch")
	fs.Float32Var(&d.VerticalUnit, "vertical-unit", d.VerticalUnit, "brick height unit")
	fs.Float32Var(&d.WallThickness, "wall", d.WallThickness, "wall thickness")
	fs.Float32Var(&d.StudRadius, "stud-radius", d.StudRadius, "stud outer radius")
	fs.Float32Var(&d.StudInnerRadius, "stud-inner-radius", d.StudInnerRadius, "stud inner radius (0 = solid)")
	fs.IntVar(&d.StudSegments, "stud-segments", d.StudSegments, "stud segment count")
	fs.Float32Var(&d.StudHeight, "stud-height", d.StudHeight, "stud height")
	fs.Float32Var(&d.TubeOuterRadius, "tube-radius", d.TubeOuterRadius, "tube outer radius")
	fs.Float32Var(&d.TubeInnerRadius, "tube-inner-radius", d.TubeInnerRadius, "tube inner radius")
	fs.IntVar(&d.TubeSegments, "tube-segments", d.TubeSegments, "tube segment count")
	fs.BoolVar(&d.Shading.Smooth, "smooth", d.Shading.Smooth, "mark the mesh smooth shaded")
	fs.Float32Var(&d.Shading.AutoSmoothAngle, "auto-smooth-angle", d.Shading.AutoSmoothAngle, "auto smooth angle in degrees")
	return bf
}

var flagFields = map[string]func(dst *geometry.BrickConfig, src geometry.BrickConfig){
	"name":              func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Name = s.Name },
	"width":             func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Width = s.Width },
	"depth":             func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Depth = s.Depth },
	"height":            func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Height = s.Height },
	"horizontal-unit":   func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.HorizontalUnit = s.HorizontalUnit },
	"vertical-unit":     func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.VerticalUnit = s.VerticalUnit },
	"wall":              func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.WallThickness = s.WallThickness },
	"stud-radius":       func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.StudRadius = s.StudRadius },
	"stud-inner-radius": func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.StudInnerRadius = s.StudInnerRadius },
	"stud-segments":     func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.StudSegments = s.StudSegments },
	"stud-height":       func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.StudHeight = s.StudHeight },
	"tube-radius":       func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.TubeOuterRadius = s.TubeOuterRadius },
	"tube-inner-radius": func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.TubeInnerRadius = s.TubeInnerRadius },
	"tube-segments":     func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.TubeSegments = s.TubeSegments },
	"smooth":            func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Shading.Smooth = s.Shading.Smooth },
	"auto-smooth-angle": func(d *geometry.BrickConfig, s geometry.BrickConfig) { d.Shading.AutoSmoothAngle = s.Shading.AutoSmoothAngle },
}

// apply copies every explicitly set flag onto dst.
func (bf *brickFlags) apply(dst *geometry.BrickConfig) {
	bf.flags.Visit(func(f *pflag.Flag) {
		if set, ok := flagFields[f.Name]; ok {
			set(dst, bf.cfg)
		}
	})
}

// resolve returns the config file (or defaults) with flag overrides applied.
func (bf *brickFlags) resolve() (geometry.BrickConfig, error) {
	cfg := geometry.DefaultBrickConfig()
	if bf.configPath != "" {
		loaded, err := loaders.LoadBrickConfig(bf.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	bf.apply(&cfg)
	return cfg, nil
}
