package metadata

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nanoteck137/thumbgen/thumbnail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailInfo(t *testing.T) {
	src := filepath.Join(t.TempDir(), "cover art.png")
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 360, 480))))
	require.NoError(t, f.Close())

	g, err := thumbnail.New(src, thumbnail.WithChmodTarget(thumbnail.ChmodFile))
	require.NoError(t, err)
	defer g.Close()

	sourceInfo := NewSourceInfo(g)
	assert.Equal(t, SourceInfo{
		Path:       src,
		MIME:       "image/png",
		Format:     "png",
		Width:      360,
		Height:     480,
		OutputName: "cover-art.png",
	}, sourceInfo)

	outDir := t.TempDir()
	res, err := g.Generate(thumbnail.Request{Dir: outDir, Width: 80, Height: 112, Mode: "0640"})
	require.NoError(t, err)

	info := NewThumbnailInfo(sourceInfo, res)
	assert.Equal(t, filepath.Join(outDir, "cover-art.png"), info.Output)
	assert.Equal(t, "0640", info.Mode)
	assert.Equal(t, "file", info.ChmodTarget)
	assert.InDelta(t, 480.0/112.0, info.Scaled.Ratio, 1e-9)
	assert.Equal(t, 84, info.Scaled.Width)
	assert.Equal(t, 112, info.Scaled.Height)
	assert.Equal(t, ThumbnailInfoCrop{X: 2, Y: 0}, info.Crop)

	d, err := json.Marshal(info)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(d, &raw))
	assert.Contains(t, raw, "chmodTarget")
	assert.Equal(t, "cover-art.png", raw["source"].(map[string]any)["outputName"])
}
