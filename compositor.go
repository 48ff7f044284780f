package composite

import (
	"errors"
	"log/slog"

	"github.com/gogpu/composite/internal/blend"
	"github.com/gogpu/composite/internal/parallel"
)

var (
	// ErrNilPixmap is returned when a required pixmap is nil.
	ErrNilPixmap = errors.New("composite: nil pixmap")

	// ErrSizeMismatch is returned when the destination, parent, and
	// current pixmaps do not share the same pixel grid.
	ErrSizeMismatch = errors.New("composite: pixmap dimensions do not match")
)

// CompositeOp describes a single blend pass.
//
// The zero value composites with ModeNormal, identity view and world
// transforms, and bilinear filtering.
type CompositeOp struct {
	// Mode selects the blend algorithm. Out-of-range values behave like
	// ModeNormal.
	Mode Mode

	// View projects parent space to clip space. The zero matrix is
	// treated as identity.
	View Matrix4

	// World places the current layer's unit quad in parent space. The
	// zero matrix is treated as identity.
	World Matrix4

	// Filter selects point or bilinear sampling for both source buffers.
	Filter FilterMode
}

// Compositor executes blend passes over a worker pool.
//
// A Compositor is safe for concurrent use: passes share only the pool, and
// each pass writes a caller-provided destination. Close releases the pool
// when the compositor is no longer needed.
type Compositor struct {
	pool *parallel.WorkerPool
}

// NewCompositor creates a compositor.
//
//	c := composite.NewCompositor(composite.WithWorkers(4))
//	defer c.Close()
func NewCompositor(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Compositor{
		pool: parallel.NewWorkerPool(o.workers),
	}
}

// Close shuts down the worker pool. The compositor must not be used after
// Close.
func (c *Compositor) Close() {
	c.pool.Close()
}

// Composite blends the current layer into the parent layer and writes the
// result to dst. All three pixmaps must share the same dimensions; dst may
// alias parent to blend in place. When aliasing, use FilterNearest with an
// axis-aligned full-coverage placement: bilinear sampling under a
// resampling transform can read pixels the pass has already written.
//
// For every destination pixel the pass derives the pixel's clip-space
// position, maps it to the shared sampling coordinate (see ClipToUV),
// samples both sources with op.Filter, and evaluates op.Mode. Pixels
// outside the transformed quad, and pixels the blend evaluator skips
// (zero current alpha for all modes except Alpha and Erase), keep dst's
// prior content.
func (c *Compositor) Composite(dst, parent, current *Pixmap, op CompositeOp) error {
	if dst == nil || parent == nil || current == nil {
		return ErrNilPixmap
	}
	w, h := dst.width, dst.height
	if parent.width != w || parent.height != h || current.width != w || current.height != h {
		return ErrSizeMismatch
	}
	if w == 0 || h == 0 {
		return nil
	}

	view, world := op.View, op.World
	if view == (Matrix4{}) {
		view = Identity4()
	}
	if world == (Matrix4{}) {
		world = Identity4()
	}

	viewWorld := view.Mul(world)
	inverse, ok := viewWorld.Affine().Invert()
	if !ok {
		// A singular placement collapses the quad; nothing is covered.
		Logger().Debug("composite: singular view*world, pass covers nothing",
			slog.String("mode", op.Mode.String()))
		return nil
	}

	Logger().Debug("composite pass",
		slog.String("mode", op.Mode.String()),
		slog.String("filter", op.Filter.String()),
		slog.Int("width", w),
		slog.Int("height", h))

	mode := op.Mode.toBlend()
	strips := parallel.Strips(h, c.pool.Workers()*4)
	work := make([]func(), len(strips))
	for i, s := range strips {
		s := s
		work[i] = func() {
			compositeRows(dst, parent, current, mode, op.Filter, inverse, s.Y0, s.Y1)
		}
	}
	c.pool.ExecuteAll(work)

	return nil
}

// compositeRows evaluates the blend for every pixel in rows [y0, y1).
func compositeRows(dst, parent, current *Pixmap, mode blend.Mode, filter FilterMode, inverse Matrix, y0, y1 int) {
	w := float64(dst.width)
	h := float64(dst.height)

	for y := y0; y < y1; y++ {
		ndcY := 1 - 2*(float64(y)+0.5)/h
		for x := 0; x < dst.width; x++ {
			ndcX := 2*(float64(x)+0.5)/w - 1

			// Quad coverage: map the pixel's clip position back to the
			// current layer's local space.
			local := inverse.TransformPoint(Pt(ndcX, ndcY))
			if local.X < 0 || local.X > 1 || local.Y < 0 || local.Y > 1 {
				continue
			}

			uv := ClipToUV(ndcX, ndcY)
			cur := current.Sample(uv.X, uv.Y, filter)
			par := parent.Sample(uv.X, uv.Y, filter)

			r, g, b, a, write := blend.Evaluate(mode,
				cur.R, cur.G, cur.B, cur.A,
				par.R, par.G, par.B, par.A)
			if !write {
				continue
			}
			dst.SetPixel(x, y, RGBA{R: r, G: g, B: b, A: a})
		}
	}
}
