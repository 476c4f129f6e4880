package thumbnail

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

type Format int

const (
	FormatJPEG Format = iota + 1
	FormatPNG
	FormatGIF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

func (f Format) MIME() string {
	switch f {
	case FormatJPEG:
		return MIMEJPEG
	case FormatPNG:
		return MIMEPNG
	case FormatGIF:
		return MIMEGIF
	default:
		return ""
	}
}

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEGIF  = "image/gif"
	MIMEBMP  = "image/bmp"
)

// acceptedMIMEs is the set that passes content validation. BMP is accepted
// here but has no Format, so it is rejected later as an unsupported image
// type.
var acceptedMIMEs = []string{MIMEJPEG, MIMEGIF, MIMEPNG, MIMEBMP}

type EncodeOptions struct {
	JPEGQuality int
}

type Codec struct {
	Decode func(r io.Reader) (image.Image, error)
	Encode func(w io.Writer, img image.Image, opts EncodeOptions) error
}

// Registry maps each format to the codec used to read and write it.
type Registry map[Format]Codec

func DefaultRegistry() Registry {
	return Registry{
		FormatJPEG: {
			Decode: jpeg.Decode,
			Encode: func(w io.Writer, img image.Image, opts EncodeOptions) error {
				q := opts.JPEGQuality
				if q <= 0 {
					q = jpeg.DefaultQuality
				}
				return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
			},
		},
		FormatPNG: {
			Decode: png.Decode,
			Encode: func(w io.Writer, img image.Image, _ EncodeOptions) error {
				return png.Encode(w, img)
			},
		},
		FormatGIF: {
			Decode: gif.Decode,
			Encode: func(w io.Writer, img image.Image, _ EncodeOptions) error {
				return gif.Encode(w, img, &gif.Options{NumColors: 256})
			},
		},
	}
}

func (r Registry) available() bool {
	for _, c := range r {
		if c.Decode != nil && c.Encode != nil {
			return true
		}
	}
	return false
}

func (r Registry) lookup(f Format) (Codec, bool) {
	c, ok := r[f]
	if !ok || c.Decode == nil || c.Encode == nil {
		return Codec{}, false
	}
	return c, true
}

// detectMIME sniffs the file content and returns the matching accepted MIME
// type, or ok == false together with the detected type.
func detectMIME(p string) (mime string, ok bool, err error) {
	m, err := mimetype.DetectFile(p)
	if err != nil {
		return "", false, err
	}

	// Subtypes such as APNG are accepted through their parent type.
	for cur := m; cur != nil; cur = cur.Parent() {
		for _, accepted := range acceptedMIMEs {
			if cur.Is(accepted) {
				return accepted, true, nil
			}
		}
	}

	return m.String(), false, nil
}

func formatFromMIME(mime string) (Format, bool) {
	switch mime {
	case MIMEJPEG:
		return FormatJPEG, true
	case MIMEPNG:
		return FormatPNG, true
	case MIMEGIF:
		return FormatGIF, true
	default:
		return 0, false
	}
}
