// Package thumbnail produces center-cropped, cover-fit thumbnails of JPEG,
// PNG and GIF images, written in the same format as their source.
//
// A Generator is built for one source file and may be used to write any
// number of thumbnails of it. It is not safe for concurrent use.
package thumbnail

import (
	"bufio"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nanoteck137/thumbgen/utils"
	"golang.org/x/image/draw"
)

const (
	DefaultMode = "0644"

	// MaxPixels bounds Width*Height of a request so the thumbnail raster
	// stays below 1 GiB of RGBA data.
	MaxPixels = 1 << 28

	// Mode of a written thumbnail when the request mode targets the
	// directory instead.
	defaultFileMode fs.FileMode = 0o644
)

type Request struct {
	// Dir is the absolute destination directory. It must already exist.
	Dir    string
	Width  int
	Height int
	// Mode is an octal permission string, DefaultMode when empty.
	Mode string
}

type Result struct {
	Path        string
	Format      Format
	Width       int
	Height      int
	Mode        fs.FileMode
	ChmodTarget ChmodTarget
	Geometry    Geometry
}

type Generator struct {
	path     string
	mime     string
	format   Format
	fileName string
	codec    Codec

	src   image.Image
	thumb image.Image

	opts options
}

func New(p string, opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.registry == nil || !o.registry.available() || o.interpolator == nil {
		return nil, newError(KindCapabilityUnavailable, "", "no image codecs or interpolator configured", nil)
	}

	if !filepath.IsAbs(p) {
		return nil, newError(KindInvalidArgument, p, "source path must be absolute", nil)
	}

	info, err := os.Stat(p)
	if err != nil {
		return nil, newError(KindFileNotFound, p, "", err)
	}
	if !info.Mode().IsRegular() {
		return nil, newError(KindFileNotFound, p, "not a regular file", nil)
	}

	mime, ok, err := detectMIME(p)
	if err != nil {
		return nil, newError(KindDecode, p, "content detection failed", err)
	}
	if !ok {
		return nil, newError(KindUnsupportedMediaType, p, "detected "+mime, nil)
	}

	g := &Generator{
		path:     p,
		mime:     mime,
		fileName: o.namer(p),
		opts:     o,
	}

	log := o.logger.With().Str("source", p).Str("mime", mime).Logger()

	format, ok := formatFromMIME(mime)
	if !ok {
		return nil, newError(KindUnsupportedImageType, p, "no decoder for "+mime, nil)
	}

	codec, ok := o.registry.lookup(format)
	if !ok {
		return nil, newError(KindUnsupportedImageType, p, "no codec registered for "+format.String(), nil)
	}

	src, err := decodeFile(p, codec)
	if err != nil {
		return nil, newError(KindDecode, p, "", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, newError(KindDecode, p, "image has no pixels", nil)
	}

	g.format = format
	g.codec = codec
	g.src = src

	log.Debug().
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Str("output_name", g.fileName).
		Msg("source decoded")

	return g, nil
}

func decodeFile(p string, codec Codec) (image.Image, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return codec.Decode(bufio.NewReader(f))
}

func (g *Generator) Path() string     { return g.path }
func (g *Generator) MIME() string     { return g.mime }
func (g *Generator) Format() Format   { return g.format }
func (g *Generator) FileName() string { return g.fileName }

// Bounds returns the bounds of the decoded source, or an empty rectangle
// once the generator is closed.
func (g *Generator) Bounds() image.Rectangle {
	if g.src == nil {
		return image.Rectangle{}
	}
	return g.src.Bounds()
}

// Thumbnail returns the raster produced by the last successful Generate.
func (g *Generator) Thumbnail() image.Image {
	return g.thumb
}

// Generate writes a Width x Height thumbnail of the source to
// Dir/FileName() and applies the request mode to the configured chmod
// target.
func (g *Generator) Generate(req Request) (Result, error) {
	if g.src == nil {
		return Result{}, newError(KindInvalidArgument, g.path, "generator is closed", nil)
	}

	if req.Width <= 0 || req.Height <= 0 {
		return Result{}, newError(KindInvalidArgument, "", "width and height must be positive", nil)
	}
	if int64(req.Width)*int64(req.Height) > MaxPixels {
		return Result{}, newError(KindInvalidArgument, "", fmt.Sprintf("%dx%d exceeds %d pixels", req.Width, req.Height, MaxPixels), nil)
	}

	if !filepath.IsAbs(req.Dir) {
		return Result{}, newError(KindInvalidArgument, req.Dir, "destination must be absolute", nil)
	}

	modeStr := req.Mode
	if modeStr == "" {
		modeStr = DefaultMode
	}

	mode, err := utils.ParseFileMode(modeStr)
	if err != nil {
		return Result{}, newError(KindInvalidArgument, "", "", err)
	}

	info, err := os.Stat(req.Dir)
	if err != nil {
		return Result{}, newError(KindSaveFailed, req.Dir, "destination directory", err)
	}
	if !info.IsDir() {
		return Result{}, newError(KindSaveFailed, req.Dir, "destination is not a directory", nil)
	}

	b := g.src.Bounds()
	geo, err := ComputeGeometry(b.Dx(), b.Dy(), req.Width, req.Height)
	if err != nil {
		return Result{}, newError(KindInvalidArgument, "", "", err)
	}

	log := g.opts.logger.With().
		Str("source", g.path).
		Str("format", g.format.String()).
		Logger()

	log.Debug().
		Float64("ratio", geo.Ratio).
		Int("scaled_width", geo.ScaledWidth).
		Int("scaled_height", geo.ScaledHeight).
		Int("crop_x", geo.CropX).
		Int("crop_y", geo.CropY).
		Msg("computed geometry")

	g.thumb = nil
	dst := resample(g.src, geo, g.opts.interpolator)

	out := filepath.Join(req.Dir, g.fileName)

	fileMode := defaultFileMode
	if g.opts.chmodTarget == ChmodFile {
		fileMode = mode
	}

	err = g.save(out, dst, fileMode)
	if err != nil {
		return Result{}, err
	}

	if g.opts.chmodTarget == ChmodDirectory {
		err = g.opts.chmod(req.Dir, mode)
		if err != nil {
			os.Remove(out)
			return Result{}, newError(KindSaveFailed, req.Dir, "chmod", err)
		}
	}

	g.thumb = dst

	log.Info().
		Str("output", out).
		Int("width", req.Width).
		Int("height", req.Height).
		Str("mode", mode.String()).
		Str("chmod_target", g.opts.chmodTarget.String()).
		Msg("thumbnail written")

	return Result{
		Path:        out,
		Format:      g.format,
		Width:       req.Width,
		Height:      req.Height,
		Mode:        mode,
		ChmodTarget: g.opts.chmodTarget,
		Geometry:    geo,
	}, nil
}

// resample scales src to geo.Scaled() and crops geo.Crop() out of it in a
// single interpolation pass.
func resample(src image.Image, geo Geometry, interp draw.Interpolator) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, geo.TargetWidth, geo.TargetHeight))
	b := src.Bounds()
	interp.Transform(dst, geo.transform(b.Min), src, b, draw.Src, nil)
	return dst
}

// save encodes img next to out and renames it into place, so a failure
// never leaves a partial file at out.
func (g *Generator) save(out string, img image.Image, mode fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(out), ".thumbgen-*")
	if err != nil {
		return newError(KindSaveFailed, out, "create", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if encErr := g.codec.Encode(w, img, g.opts.encode); encErr != nil {
		return newError(KindEncode, out, g.format.String(), encErr)
	}

	if ferr := w.Flush(); ferr != nil {
		return newError(KindSaveFailed, out, "write", ferr)
	}

	if cerr := tmp.Chmod(mode); cerr != nil {
		return newError(KindSaveFailed, out, "chmod", cerr)
	}

	if cerr := tmp.Close(); cerr != nil {
		return newError(KindSaveFailed, out, "close", cerr)
	}

	if rerr := os.Rename(tmp.Name(), out); rerr != nil {
		return newError(KindSaveFailed, out, "rename", rerr)
	}

	return nil
}

// Close releases the source and thumbnail rasters.
func (g *Generator) Close() error {
	g.src = nil
	g.thumb = nil
	return nil
}
