package thumbnail

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Geometry describes how a source raster is scaled and cropped to fill a
// target size. The source is scaled by 1/Ratio so both sides cover the
// target, then a target sized window centered in the scaled image is kept.
type Geometry struct {
	SourceWidth  int
	SourceHeight int
	TargetWidth  int
	TargetHeight int

	Ratio        float64
	ScaledWidth  int
	ScaledHeight int
	CropX        int
	CropY        int
}

func ComputeGeometry(srcWidth, srcHeight, width, height int) (Geometry, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Geometry{}, fmt.Errorf("invalid source size %dx%d", srcWidth, srcHeight)
	}
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	widthRatio := float64(srcWidth) / float64(width)
	heightRatio := float64(srcHeight) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	// math.Round rounds half away from zero.
	scaledWidth := int(math.Round(float64(srcWidth) / ratio))
	scaledHeight := int(math.Round(float64(srcHeight) / ratio))

	// Floating point error must never produce a scaled side below the target.
	if scaledWidth < width {
		scaledWidth = width
	}
	if scaledHeight < height {
		scaledHeight = height
	}

	return Geometry{
		SourceWidth:  srcWidth,
		SourceHeight: srcHeight,
		TargetWidth:  width,
		TargetHeight: height,
		Ratio:        ratio,
		ScaledWidth:  scaledWidth,
		ScaledHeight: scaledHeight,
		CropX:        (scaledWidth - width) / 2,
		CropY:        (scaledHeight - height) / 2,
	}, nil
}

func (g Geometry) Scaled() image.Point {
	return image.Pt(g.ScaledWidth, g.ScaledHeight)
}

func (g Geometry) Crop() image.Rectangle {
	return image.Rect(g.CropX, g.CropY, g.CropX+g.TargetWidth, g.CropY+g.TargetHeight)
}

// transform returns the source to destination matrix for a source whose
// bounds start at min.
func (g Geometry) transform(min image.Point) f64.Aff3 {
	sx := float64(g.ScaledWidth) / float64(g.SourceWidth)
	sy := float64(g.ScaledHeight) / float64(g.SourceHeight)

	return f64.Aff3{
		sx, 0, -float64(min.X)*sx - float64(g.CropX),
		0, sy, -float64(min.Y)*sy - float64(g.CropY),
	}
}
