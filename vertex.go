package composite

import "golang.org/x/image/math/f64"

// MapVertex transforms a vertex position from the current layer's local
// quad space to clip space and derives the shared sampling coordinate.
//
// The position is extended to homogeneous form (x, y, 1, 1) and transformed
// by the combined viewWorld = view * world matrix. The sampling coordinate
// is derived from the clip-space position by ClipToUV; both the parent and
// the current buffer are sampled with this same coordinate.
//
// MapVertex is a pure transform with no failure modes: it always succeeds
// for finite input. Non-finite input (NaN transforms) produces garbage
// output, which is the caller's responsibility to avoid.
func MapVertex(p Point, viewWorld Matrix4) (clip f64.Vec4, uv Point) {
	clip = viewWorld.TransformVec4(f64.Vec4{p.X, p.Y, 1, 1})
	return clip, ClipToUV(clip[0], clip[1])
}

// ClipToUV maps a clip-space position to a normalized sampling coordinate:
//
//	u = (x + 1) / 2
//	v = -((y - 1) / 2)
//
// Clip space is Y up with the origin in the center; sampling space has a
// top-left origin with Y down, so the mapping flips Y. Clip (0, 0) maps to
// the buffer center (0.5, 0.5) and clip (-1, 1) to the top-left (0, 0).
func ClipToUV(x, y float64) Point {
	return Point{
		X: (x + 1) / 2,
		Y: -((y - 1) / 2),
	}
}
