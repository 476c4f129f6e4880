package metadata

import (
	"fmt"

	"github.com/nanoteck137/thumbgen/thumbnail"
)

type SourceInfo struct {
	Path   string `json:"path"`
	MIME   string `json:"mime"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	OutputName string `json:"outputName"`
}

type ThumbnailInfoScaled struct {
	Ratio  float64 `json:"ratio"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

type ThumbnailInfoCrop struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ThumbnailInfo struct {
	Source SourceInfo `json:"source"`
	Output string     `json:"output"`
	Format string     `json:"format"`
	Width  int        `json:"width"`
	Height int        `json:"height"`

	Mode        string `json:"mode"`
	ChmodTarget string `json:"chmodTarget"`

	Scaled ThumbnailInfoScaled `json:"scaled"`
	Crop   ThumbnailInfoCrop   `json:"crop"`
}

func NewSourceInfo(g *thumbnail.Generator) SourceInfo {
	b := g.Bounds()

	return SourceInfo{
		Path:       g.Path(),
		MIME:       g.MIME(),
		Format:     g.Format().String(),
		Width:      b.Dx(),
		Height:     b.Dy(),
		OutputName: g.FileName(),
	}
}

func NewThumbnailInfo(src SourceInfo, res thumbnail.Result) ThumbnailInfo {
	return ThumbnailInfo{
		Source:      src,
		Output:      res.Path,
		Format:      res.Format.String(),
		Width:       res.Width,
		Height:      res.Height,
		Mode:        fmt.Sprintf("%04o", uint32(res.Mode.Perm())),
		ChmodTarget: res.ChmodTarget.String(),
		Scaled: ThumbnailInfoScaled{
			Ratio:  res.Geometry.Ratio,
			Width:  res.Geometry.ScaledWidth,
			Height: res.Geometry.ScaledHeight,
		},
		Crop: ThumbnailInfoCrop{
			X: res.Geometry.CropX,
			Y: res.Geometry.CropY,
		},
	}
}
