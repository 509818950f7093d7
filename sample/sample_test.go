package sample

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/homotopy"
)

func TestParams(t *testing.T) {
	assert.Nil(t, Params[float64](0))
	assert.Nil(t, Params[float64](-3))
	assert.Equal(t, []float64{0}, Params[float64](1))
	assert.Equal(t, []float64{0, 1}, Params[float64](2))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Params[float64](5))
	assert.Equal(t, []float32{0, 0.5, 1}, Params[float32](3))
}

func TestCurve(t *testing.T) {
	c := homotopy.Line([3]float64{0, 0, 0}, [3]float64{4, 0, 0})
	pts, err := Curve(context.Background(), c, 5)
	require.NoError(t, err)
	assert.Equal(t, [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}, pts)
}

func TestCurveManyChunks(t *testing.T) {
	c := homotopy.Line([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	n := 3*curveChunk + 7
	pts, err := Curve(context.Background(), c, n, WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, pts, n)
	ts := Params[float64](n)
	for i, p := range pts {
		assert.Equal(t, c(ts[i]), p)
	}
}

func TestSurface(t *testing.T) {
	s := homotopy.Surface[float64](func(t [2]float64) [3]float64 {
		return [3]float64{t[0], 10 * t[1], 0}
	})
	grid, err := Surface(context.Background(), s, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, [][][3]float64{
		{{0, 0, 0}, {0.5, 0, 0}, {1, 0, 0}},
		{{0, 10, 0}, {0.5, 10, 0}, {1, 10, 0}},
	}, grid)
	assert.Len(t, Flatten2(grid), 6)
}

func TestVolume(t *testing.T) {
	v := homotopy.Volume[float64](func(t [3]float64) [3]float64 { return t })
	grid, err := Volume(context.Background(), v, 2, 3, 4, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, grid, 4)
	for k, layer := range grid {
		require.Len(t, layer, 3)
		for j, row := range layer {
			require.Len(t, row, 2)
			for i, p := range row {
				assert.Equal(t, [3]float64{float64(i), float64(j) / 2, float64(k) / 3}, p)
			}
		}
	}
	assert.Len(t, Flatten3(grid), 24)
}

func TestFloat32(t *testing.T) {
	disc := homotopy.Circle([3]float32{0, 0, 0}, 1)
	grid, err := Surface(context.Background(), disc, 5, 2)
	require.NoError(t, err)
	for _, p := range grid[0] {
		assert.Equal(t, [3]float32{0, 0, 0}, p)
	}
	for _, p := range grid[1] {
		assert.InDelta(t, 1, homotopy.Len3(p), 1e-6)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := homotopy.Line([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	pts, err := Curve(ctx, c, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, pts)

	grid, err := Volume(ctx, homotopy.Sphere([3]float64{0, 0, 0}, 1.0), 4, 4, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, grid)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds[float64](nil)
	assert.False(t, ok)

	_, ok = Bounds([][3]float64{{math.NaN(), 0, 0}})
	assert.False(t, ok)

	box, ok := Bounds([][3]float64{
		{1, 2, 3},
		{math.NaN(), 100, 100},
		{-1, 5, 0},
		{0, -2, 7},
	})
	require.True(t, ok)
	assert.Equal(t, r3.Box{Min: r3.Vec{X: -1, Y: -2, Z: 0}, Max: r3.Vec{X: 1, Y: 5, Z: 7}}, box)
}

func TestBoundsOfSphere(t *testing.T) {
	grid, err := Volume(context.Background(), homotopy.Sphere([3]float64{1, 2, 3}, 2.0), 9, 9, 3)
	require.NoError(t, err)
	box, ok := Bounds(Flatten3(grid))
	require.True(t, ok)
	assert.InDelta(t, -1, box.Min.X, 1e-9)
	assert.InDelta(t, 3, box.Max.X, 1e-9)
	assert.InDelta(t, 1, box.Min.Z, 1e-9)
	assert.InDelta(t, 5, box.Max.Z, 1e-9)
}
