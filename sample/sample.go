// Package sample evaluates homotopy maps on regular grids of parameter
// values.
//
// Grids are evaluated concurrently. Maps are pure functions of their input,
// so the result doesn't depend on the number of workers.
package sample

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/homotopy"
)

// curveChunk is the number of curve points evaluated by one task.
const curveChunk = 256

type options struct {
	workers int
}

// Option configures sampling.
type Option func(*options)

// WithWorkers limits the number of rows that are evaluated concurrently. A
// value of zero or less selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Params returns n evenly spaced parameter values, starting at 0 and ending
// at 1. A single value is 0, and n <= 0 returns nil.
func Params[T homotopy.Float](n int) []T {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []T{0}
	}
	ps := make([]T, n)
	for i := range ps {
		ps[i] = T(i) / T(n-1)
	}
	return ps
}

// run calls fn for each row in [0, rows), using up to o.workers goroutines.
// It stops scheduling rows once ctx is done and returns ctx's error.
func run(ctx context.Context, rows int, o options, fn func(row int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Curve evaluates c at n evenly spaced parameter values.
func Curve[T homotopy.Float](ctx context.Context, c homotopy.Curver[T], n int, opts ...Option) ([][3]T, error) {
	o := newOptions(opts)
	f := homotopy.CurveOf(c)
	ts := Params[T](n)
	out := make([][3]T, len(ts))
	chunks := (len(ts) + curveChunk - 1) / curveChunk
	err := run(ctx, chunks, o, func(chunk int) {
		end := min((chunk+1)*curveChunk, len(ts))
		for i := chunk * curveChunk; i < end; i++ {
			out[i] = f(ts[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Surface evaluates s on a grid of nu by nv parameter values. The result is
// indexed as [v][u].
func Surface[T homotopy.Float](ctx context.Context, s homotopy.Surfacer[T], nu, nv int, opts ...Option) ([][][3]T, error) {
	o := newOptions(opts)
	f := homotopy.SurfaceOf(s)
	us, vs := Params[T](nu), Params[T](nv)
	out := make([][][3]T, len(vs))
	err := run(ctx, len(vs), o, func(row int) {
		pts := make([][3]T, len(us))
		for i, u := range us {
			pts[i] = f([2]T{u, vs[row]})
		}
		out[row] = pts
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Volume evaluates v on a grid of nu by nv by nw parameter values. The result
// is indexed as [w][v][u].
func Volume[T homotopy.Float](ctx context.Context, v homotopy.Volumer[T], nu, nv, nw int, opts ...Option) ([][][][3]T, error) {
	o := newOptions(opts)
	f := homotopy.VolumeOf(v)
	us, vs, ws := Params[T](nu), Params[T](nv), Params[T](nw)
	out := make([][][][3]T, len(ws))
	for k := range out {
		out[k] = make([][][3]T, len(vs))
	}
	err := run(ctx, len(ws)*len(vs), o, func(row int) {
		k, j := row/len(vs), row%len(vs)
		pts := make([][3]T, len(us))
		for i, u := range us {
			pts[i] = f([3]T{u, vs[j], ws[k]})
		}
		out[k][j] = pts
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Flatten2 returns the points of a surface grid in row order.
func Flatten2[T homotopy.Float](grid [][][3]T) [][3]T {
	var n int
	for _, row := range grid {
		n += len(row)
	}
	out := make([][3]T, 0, n)
	for _, row := range grid {
		out = append(out, row...)
	}
	return out
}

// Flatten3 returns the points of a volume grid in row order.
func Flatten3[T homotopy.Float](grid [][][][3]T) [][3]T {
	var out [][3]T
	for _, layer := range grid {
		out = append(out, Flatten2(layer)...)
	}
	return out
}

// Bounds computes the axis-aligned bounding box of points. Points with a NaN
// coordinate are skipped. It returns false if no point remains.
func Bounds[T homotopy.Float](points [][3]T) (r3.Box, bool) {
	box := r3.Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	var ok bool
	for _, p := range points {
		if homotopy.IsNaN3(p) {
			continue
		}
		ok = true
		x, y, z := float64(p[0]), float64(p[1]), float64(p[2])
		box.Min = r3.Vec{X: math.Min(box.Min.X, x), Y: math.Min(box.Min.Y, y), Z: math.Min(box.Min.Z, z)}
		box.Max = r3.Vec{X: math.Max(box.Max.X, x), Y: math.Max(box.Max.Y, y), Z: math.Max(box.Max.Z, z)}
	}
	if !ok {
		return r3.Box{}, false
	}
	return box, true
}
