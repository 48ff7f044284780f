// Package composite implements a CPU layer-compositing stage for
// premultiplied-alpha color buffers.
//
// # Overview
//
// composite blends a "current" (child) layer into a "parent" (destination)
// layer. The current layer occupies the unit quad in its own local space and
// is placed into the parent's coordinate space by a world matrix; a view
// matrix projects parent space to clip space. For every destination pixel
// the stage samples both buffers at a shared normalized coordinate and
// evaluates one of fourteen blend algorithms under premultiplied-alpha
// semantics.
//
// # Quick Start
//
//	parent := composite.FromImage(background)
//	current := composite.FromImage(layer)
//
//	c := composite.NewCompositor()
//	defer c.Close()
//
//	err := c.Composite(parent, parent, current, composite.CompositeOp{
//		Mode:  composite.ModeMultiply,
//		View:  composite.Orthographic(0, float64(parent.Width()), 0, float64(parent.Height())),
//		World: composite.WorldQuad(0, 0, float64(parent.Width()), float64(parent.Height())),
//	})
//
// # Blend model
//
// The blend algorithms follow the classic raster-graphics (Photoshop-style)
// modes adapted to premultiplied buffers: linear modes (Add, Lighten,
// Darken, Difference, Screen, HardLight) operate on premultiplied channels
// directly, while ratio-sensitive modes (Multiply, Overlay, Alpha, Erase)
// first divide out alpha to recover straight color. For every mode except
// Alpha and Erase, a current pixel with zero alpha is skipped: the
// destination keeps its prior content.
//
// # Coordinate System
//
// Sampling coordinates use the conventional top-left origin with Y down.
// Clip space is Y up, as in WebGPU; the mapper's y-flip converts between
// the two. See MapVertex.
//
// # Concurrency
//
// A composite pass fans destination rows out over a fixed worker pool.
// Pixels are data-independent; sources are read-only and writes are
// disjoint, so no synchronization happens per pixel.
package composite
