// Package camera: the camera model, screen-space types and sentinel errors.
package camera

import (
	"errors"

	"github.com/katalvlaran/plotf/core"
)

// Sentinel errors for projector construction.
var (
	// ErrInvalidBox indicates a scene box with a non-valid axis range.
	ErrInvalidBox = errors.New("camera: scene box must have valid finite ranges")

	// ErrInvalidCanvas indicates non-positive canvas dimensions.
	ErrInvalidCanvas = errors.New("camera: canvas width and height must be positive")
)

// Camera limits and projection policy.
const (
	// MinPitch and MaxPitch bound elevation so the view never flips over
	// the pole.
	MinPitch = -1.45
	MaxPitch = 1.45

	// MinDistance and MaxDistance bound the orbit radius in normalized
	// scene units.
	MinDistance = 1.35
	MaxDistance = 18

	// BehindEps is the perspective-divide floor: a point whose camera
	// distance falls to BehindEps or below is behind the camera.
	BehindEps = 0.08

	// canvasFill is the fraction of the smaller canvas side the unit
	// scene maps onto.
	canvasFill = 0.45
)

// Camera is an orbit camera: yaw about the vertical axis, pitch
// (elevation) and distance from the scene center. The zero value is not
// useful; start from DefaultCamera.
type Camera struct {
	Yaw, Pitch, Distance float64
}

// DefaultCamera returns the initial three-quarter view.
func DefaultCamera() Camera {
	return Camera{Yaw: 0.65, Pitch: 0.5, Distance: 4.5}
}

// Clamped returns the camera with pitch and distance forced into range.
func (c Camera) Clamped() Camera {
	c.Pitch = core.Clamp(c.Pitch, MinPitch, MaxPitch)
	c.Distance = core.Clamp(c.Distance, MinDistance, MaxDistance)

	return c
}

// Orbit returns a new camera rotated by the given yaw and pitch deltas.
func (c Camera) Orbit(dYaw, dPitch float64) Camera {
	c.Yaw += dYaw
	c.Pitch += dPitch

	return c.Clamped()
}

// Zoom returns a new camera with the distance scaled by factor and
// clamped. Non-positive factors leave the camera unchanged.
func (c Camera) Zoom(factor float64) Camera {
	if factor <= 0 {
		return c.Clamped()
	}
	c.Distance *= factor

	return c.Clamped()
}

// ScreenPoint is a projected canvas coordinate, y growing downward.
type ScreenPoint struct {
	X, Y float64
}

// ScreenFace is a projected quad with its depth key. Smaller Depth means
// farther from the camera.
type ScreenFace struct {
	Pts   [4]ScreenPoint
	Depth float64
}

// ScreenSegment is a projected polyline with its depth key.
type ScreenSegment struct {
	Pts   []ScreenPoint
	Depth float64
}
