package camera

import (
	"math"
	"sort"

	"github.com/katalvlaran/plotf/core"
)

// Projector maps world points of one frame onto the canvas. Build one per
// frame with NewProjector; it is immutable and safe for reuse within the
// frame.
type Projector struct {
	center             core.Point3
	norm               float64
	sinYaw, cosYaw     float64
	sinPitch, cosPitch float64
	distance           float64
	cx, cy             float64
	scale              float64
}

// NewProjector builds a projector for the given scene box, camera and
// canvas size. The camera is clamped first, so callers may pass raw
// interaction state.
//
// Errors:
//   - ErrInvalidBox    — a box axis is not a valid finite range.
//   - ErrInvalidCanvas — width or height is not positive.
func NewProjector(box core.Box3, cam Camera, width, height float64) (*Projector, error) {
	if !box.Valid() {
		return nil, ErrInvalidBox
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidCanvas
	}
	cam = cam.Clamped()

	p := &Projector{
		center:   box.Center(),
		norm:     2 / box.MaxSpan(),
		distance: cam.Distance,
		cx:       width / 2,
		cy:       height / 2,
		scale:    canvasFill * math.Min(width, height),
	}
	p.sinYaw, p.cosYaw = math.Sincos(cam.Yaw)
	p.sinPitch, p.cosPitch = math.Sincos(cam.Pitch)

	return p, nil
}

// rotate maps a world point into camera space: box-center translation,
// normalization, yaw about the vertical axis, then pitch. rz is the depth
// key (pre-divide rotated z, larger = nearer).
func (p *Projector) rotate(pt core.Point3) (rx, ry, rz float64) {
	nx := (pt.X - p.center.X) * p.norm
	ny := (pt.Y - p.center.Y) * p.norm
	nz := (pt.Z - p.center.Z) * p.norm

	x1 := nx*p.cosYaw - ny*p.sinYaw
	y1 := nx*p.sinYaw + ny*p.cosYaw

	rx = x1
	ry = nz*p.cosPitch - y1*p.sinPitch
	rz = y1*p.cosPitch + nz*p.sinPitch

	return rx, ry, rz
}

func (p *Projector) project(pt core.Point3) (ScreenPoint, float64, bool) {
	rx, ry, rz := p.rotate(pt)
	d := p.distance - rz
	if d <= BehindEps {
		return ScreenPoint{}, 0, false
	}
	inv := p.scale / d

	return ScreenPoint{X: p.cx + rx*inv, Y: p.cy - ry*inv}, rz, true
}

// Project maps one world point to the canvas. ok is false when the point
// is behind the camera; the returned coordinates are always finite.
func (p *Projector) Project(pt core.Point3) (ScreenPoint, bool) {
	sp, _, ok := p.project(pt)

	return sp, ok
}

// ProjectFace projects a quad. A face with any behind-camera corner is
// dropped whole. Depth is the mean corner depth.
func (p *Projector) ProjectFace(f core.Face) (ScreenFace, bool) {
	var out ScreenFace
	for i, corner := range f {
		sp, rz, ok := p.project(corner)
		if !ok {
			return ScreenFace{}, false
		}
		out.Pts[i] = sp
		out.Depth += rz / 4
	}

	return out, true
}

// ProjectSegment projects a polyline. A segment with any behind-camera
// point is dropped whole. Depth is the mean point depth.
func (p *Projector) ProjectSegment(s core.Segment3) (ScreenSegment, bool) {
	if len(s) < 2 {
		return ScreenSegment{}, false
	}
	out := ScreenSegment{Pts: make([]ScreenPoint, len(s))}
	for i, pt := range s {
		sp, rz, ok := p.project(pt)
		if !ok {
			return ScreenSegment{}, false
		}
		out.Pts[i] = sp
		out.Depth += rz
	}
	out.Depth /= float64(len(s))

	return out, true
}

// ProjectFaces projects a face list, dropping behind-camera faces.
func (p *Projector) ProjectFaces(faces []core.Face) []ScreenFace {
	out := make([]ScreenFace, 0, len(faces))
	for _, f := range faces {
		if sf, ok := p.ProjectFace(f); ok {
			out = append(out, sf)
		}
	}

	return out
}

// ProjectSegments projects a segment list, dropping behind-camera ones.
func (p *Projector) ProjectSegments(segs []core.Segment3) []ScreenSegment {
	out := make([]ScreenSegment, 0, len(segs))
	for _, s := range segs {
		if ss, ok := p.ProjectSegment(s); ok {
			out = append(out, ss)
		}
	}

	return out
}

// SortFaces orders faces ascending by depth key, farthest first, so a
// renderer painting in order overdraws correctly.
func SortFaces(faces []ScreenFace) {
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth < faces[j].Depth
	})
}

// SortSegments orders segments ascending by depth key, farthest first.
func SortSegments(segs []ScreenSegment) {
	sort.SliceStable(segs, func(i, j int) bool {
		return segs[i].Depth < segs[j].Depth
	})
}
