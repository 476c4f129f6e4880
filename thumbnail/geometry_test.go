package thumbnail

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGeometry_Landscape(t *testing.T) {
	g, err := ComputeGeometry(800, 600, 100, 100)
	require.NoError(t, err)

	assert.Equal(t, 6.0, g.Ratio)
	assert.Equal(t, 133, g.ScaledWidth)
	assert.Equal(t, 100, g.ScaledHeight)
	assert.Equal(t, 16, g.CropX)
	assert.Equal(t, 0, g.CropY)
}

func TestComputeGeometry_Table(t *testing.T) {
	tests := []struct {
		srcW, srcH, w, h int
		scaledW, scaledH int
		cropX, cropY     int
	}{
		{600, 800, 100, 100, 100, 133, 0, 16},
		{1920, 1080, 320, 180, 320, 180, 0, 0},
		{1000, 1000, 200, 100, 200, 200, 0, 50},
		{100, 100, 300, 200, 300, 300, 0, 50},
		{50, 20, 10, 10, 25, 10, 7, 0},
		{3, 2, 2, 2, 3, 2, 0, 0},
		{1, 1, 64, 32, 64, 64, 0, 16},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%dx%d->%dx%d", tt.srcW, tt.srcH, tt.w, tt.h)
		t.Run(name, func(t *testing.T) {
			g, err := ComputeGeometry(tt.srcW, tt.srcH, tt.w, tt.h)
			require.NoError(t, err)

			assert.Equal(t, tt.scaledW, g.ScaledWidth, "scaled width")
			assert.Equal(t, tt.scaledH, g.ScaledHeight, "scaled height")
			assert.Equal(t, tt.cropX, g.CropX, "crop x")
			assert.Equal(t, tt.cropY, g.CropY, "crop y")
		})
	}
}

func TestComputeGeometry_RoundsHalfAwayFromZero(t *testing.T) {
	// 5 / (2/1) = 2.5 rounds to 3.
	g, err := ComputeGeometry(5, 2, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, g.ScaledWidth)
	assert.Equal(t, 1, g.ScaledHeight)
	assert.Equal(t, 1, g.CropX)
}

func TestComputeGeometry_CoverAndCenter(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 10, 33, 100, 101, 480, 599, 600, 1023}

	for _, srcW := range sizes {
		for _, srcH := range sizes {
			for _, w := range sizes {
				for _, h := range sizes {
					g, err := ComputeGeometry(srcW, srcH, w, h)
					require.NoError(t, err)

					if g.ScaledWidth < w || g.ScaledHeight < h {
						t.Fatalf("%dx%d->%dx%d: scaled %dx%d does not cover target",
							srcW, srcH, w, h, g.ScaledWidth, g.ScaledHeight)
					}

					if g.CropX != (g.ScaledWidth-w)/2 || g.CropY != (g.ScaledHeight-h)/2 {
						t.Fatalf("%dx%d->%dx%d: crop (%d,%d) not centered in %dx%d",
							srcW, srcH, w, h, g.CropX, g.CropY, g.ScaledWidth, g.ScaledHeight)
					}

					if !g.Crop().In(image.Rect(0, 0, g.ScaledWidth, g.ScaledHeight)) {
						t.Fatalf("%dx%d->%dx%d: crop %v outside scaled image", srcW, srcH, w, h, g.Crop())
					}
				}
			}
		}
	}
}

func TestComputeGeometry_MatchingAspectHasNoCrop(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5, 8} {
		g, err := ComputeGeometry(160*k, 90*k, 160, 90)
		require.NoError(t, err)

		assert.Equal(t, 0, g.CropX)
		assert.Equal(t, 0, g.CropY)
		assert.Equal(t, 160, g.ScaledWidth)
		assert.Equal(t, 90, g.ScaledHeight)
	}
}

func TestComputeGeometry_Invalid(t *testing.T) {
	for _, in := range [][4]int{
		{0, 10, 10, 10},
		{10, -1, 10, 10},
		{10, 10, 0, 10},
		{10, 10, 10, -5},
	} {
		_, err := ComputeGeometry(in[0], in[1], in[2], in[3])
		assert.Error(t, err, "%v", in)
	}
}

func TestGeometryTransform(t *testing.T) {
	g, err := ComputeGeometry(800, 600, 100, 100)
	require.NoError(t, err)

	m := g.transform(image.Pt(0, 0))

	// The source's right edge lands on the scaled right edge minus the crop.
	assert.InDelta(t, float64(g.ScaledWidth-g.CropX), m[0]*800+m[2], 1e-9)
	assert.InDelta(t, float64(g.ScaledHeight-g.CropY), m[4]*600+m[5], 1e-9)

	// An offset source origin is moved back to zero first.
	m = g.transform(image.Pt(10, 20))
	assert.InDelta(t, -float64(g.CropX), m[0]*10+m[2], 1e-9)
	assert.InDelta(t, -float64(g.CropY), m[4]*20+m[5], 1e-9)
}
