package geometry

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/math"
)

// Shading is the single smoothing flag handed to the host with the mesh.
// The generators never read it.
type Shading struct {
	Smooth          bool    `toml:"smooth" yaml:"smooth" json:"smooth"`
	AutoSmoothAngle float32 `toml:"auto_smooth_angle" yaml:"auto_smooth_angle" json:"auto_smooth_angle"`
}

// Placement positions the finished brick in the host scene. Rotation is in
// degrees about +z and is applied before the translation.
type Placement struct {
	X         float32 `toml:"x" yaml:"x"`
	Y         float32 `toml:"y" yaml:"y"`
	Z         float32 `toml:"z" yaml:"z"`
	RotationZ float32 `toml:"rotation_z" yaml:"rotation_z"`
}

func (p Placement) IsIdentity() bool {
	return p == Placement{}
}

// Matrix returns the placement as a transform.
func (p Placement) Matrix() math.Mat4 {
	rot := math.NewMat4EulerZ(math.DegToRad(p.RotationZ))
	return rot.Mul(math.NewMat4Translation(math.NewVec3(p.X, p.Y, p.Z)))
}

// BrickConfig holds every parameter of a brick. Width, Depth and Height are
// counted in studs; the unit sizes convert them to model units.
type BrickConfig struct {
	Name   string `toml:"name" yaml:"name"`
	Width  int    `toml:"width" yaml:"width"`
	Depth  int    `toml:"depth" yaml:"depth"`
	Height int    `toml:"height" yaml:"height"`

	HorizontalUnit float32 `toml:"horizontal_unit" yaml:"horizontal_unit"`
	VerticalUnit   float32 `toml:"vertical_unit" yaml:"vertical_unit"`
	WallThickness  float32 `toml:"wall_thickness" yaml:"wall_thickness"`

	StudRadius      float32 `toml:"stud_radius" yaml:"stud_radius"`
	StudInnerRadius float32 `toml:"stud_inner_radius" yaml:"stud_inner_radius"`
	StudSegments    int     `toml:"stud_segments" yaml:"stud_segments"`
	StudHeight      float32 `toml:"stud_height" yaml:"stud_height"`

	TubeOuterRadius float32 `toml:"tube_outer_radius" yaml:"tube_outer_radius"`
	TubeInnerRadius float32 `toml:"tube_inner_radius" yaml:"tube_inner_radius"`
	TubeSegments    int     `toml:"tube_segments" yaml:"tube_segments"`

	Shading   Shading   `toml:"shading" yaml:"shading"`
	Placement Placement `toml:"placement" yaml:"placement"`
}

// DefaultBrickConfig returns a classic 2x4 brick.
func DefaultBrickConfig() BrickConfig {
	return BrickConfig{
		Name:            "brick",
		Width:           2,
		Depth:           4,
		Height:          1,
		HorizontalUnit:  0.8,
		VerticalUnit:    0.96,
		WallThickness:   0.16,
		StudRadius:      0.24,
		StudInnerRadius: 0,
		StudSegments:    12,
		StudHeight:      0.16,
		TubeOuterRadius: 0.3256,
		TubeInnerRadius: 0.24,
		TubeSegments:    12,
		Shading: Shading{
			Smooth:          false,
			AutoSmoothAngle: 30,
		},
	}
}

// Dimensions returns the half width, half depth and full height of the body.
func (c BrickConfig) Dimensions() (hx, hy, hz float32) {
	hx = float32(c.Width) * c.HorizontalUnit / 2
	hy = float32(c.Depth) * c.HorizontalUnit / 2
	hz = float32(c.Height) * c.VerticalUnit
	return hx, hy, hz
}

// StudSpec describes a stud. Solid studs are closed at both ends; a hollow
// stud only gets its top ring since the bottom one would sit inside the roof.
func (c BrickConfig) StudSpec() CylinderSpec {
	return CylinderSpec{
		Segments:    c.StudSegments,
		OuterRadius: c.StudRadius,
		InnerRadius: c.StudInnerRadius,
		Height:      c.StudHeight,
		BottomCap:   c.StudInnerRadius == 0,
		TopCap:      true,
	}
}

// TubeSpec describes an underside tube: it rises from the floor plane to
// the ceiling of the cavity and is only closed where it meets the ceiling.
func (c BrickConfig) TubeSpec() CylinderSpec {
	_, _, hz := c.Dimensions()
	return CylinderSpec{
		Segments:    c.TubeSegments,
		OuterRadius: c.TubeOuterRadius,
		InnerRadius: c.TubeInnerRadius,
		Height:      hz - c.WallThickness,
		BottomCap:   false,
		TopCap:      true,
	}
}

// Normalize clamps host-only values into range. Geometry parameters are
// left alone; Validate reports those instead.
func (c BrickConfig) Normalize() BrickConfig {
	c.Shading.AutoSmoothAngle = math.Clamp(c.Shading.AutoSmoothAngle, 0, 180)
	if c.Name == "" {
		c.Name = "brick"
	}
	return c
}

// Validate reports every parameter that would make the generated solid
// degenerate. The generators do not call it; hosts decide whether to.
func (c BrickConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrDegenerateInput))
	}

	if c.Width < 1 || c.Depth < 1 || c.Height < 1 {
		bad("brick size %dx%dx%d must be at least 1x1x1", c.Width, c.Depth, c.Height)
	}
	if c.HorizontalUnit <= 0 || c.VerticalUnit <= 0 {
		bad("unit sizes %g/%g must be positive", c.HorizontalUnit, c.VerticalUnit)
	}
	if c.StudSegments < 3 {
		bad("stud segments %d must be at least 3", c.StudSegments)
	}
	if c.TubeSegments < 3 {
		bad("tube segments %d must be at least 3", c.TubeSegments)
	}
	if c.StudRadius <= 0 {
		bad("stud radius %g must be positive", c.StudRadius)
	}
	if c.StudInnerRadius < 0 || (c.StudInnerRadius > 0 && c.StudInnerRadius >= c.StudRadius) {
		bad("stud inner radius %g must be in [0, %g)", c.StudInnerRadius, c.StudRadius)
	}
	if c.StudHeight <= 0 {
		bad("stud height %g must be positive", c.StudHeight)
	}
	if c.TubeOuterRadius <= 0 {
		bad("tube outer radius %g must be positive", c.TubeOuterRadius)
	}
	if c.TubeInnerRadius < 0 || (c.TubeInnerRadius > 0 && c.TubeInnerRadius >= c.TubeOuterRadius) {
		bad("tube inner radius %g must be in [0, %g)", c.TubeInnerRadius, c.TubeOuterRadius)
	}

	hx, hy, hz := c.Dimensions()
	limit := min(hx, hy, hz) / 2
	if c.WallThickness <= 0 || c.WallThickness >= limit {
		bad("wall thickness %g must be in (0, %g)", c.WallThickness, limit)
	}

	return errors.Join(errs...)
}
