package thumbnail

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nanoteck137/thumbgen/utils"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

// ChmodTarget selects what the permission mode of a Request is applied to.
type ChmodTarget int

const (
	// ChmodDirectory applies the mode to the destination directory.
	ChmodDirectory ChmodTarget = iota
	// ChmodFile applies the mode to the written thumbnail.
	ChmodFile
)

func (t ChmodTarget) String() string {
	switch t {
	case ChmodDirectory:
		return "dir"
	case ChmodFile:
		return "file"
	default:
		return fmt.Sprintf("chmod-target(%d)", int(t))
	}
}

func ParseChmodTarget(s string) (ChmodTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dir", "directory":
		return ChmodDirectory, nil
	case "file":
		return ChmodFile, nil
	default:
		return 0, fmt.Errorf("unknown chmod target %q", s)
	}
}

var filters = map[string]draw.Interpolator{
	"bilinear":        draw.BiLinear,
	"catmullrom":      draw.CatmullRom,
	"approx-bilinear": draw.ApproxBiLinear,
	"nearest":         draw.NearestNeighbor,
}

const DefaultFilter = "bilinear"

func ParseFilter(name string) (draw.Interpolator, error) {
	if name == "" {
		name = DefaultFilter
	}

	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", name)
	}

	return f, nil
}

// Namer derives the output file name from the source path.
type Namer func(p string) string

var (
	SanitizeNamer Namer = utils.SanitizeFileName
	SlugNamer     Namer = utils.SlugFileName
)

type options struct {
	registry     Registry
	interpolator draw.Interpolator
	chmodTarget  ChmodTarget
	namer        Namer
	encode       EncodeOptions
	logger       zerolog.Logger

	chmod func(name string, mode fs.FileMode) error
}

func defaultOptions() options {
	return options{
		registry:     DefaultRegistry(),
		interpolator: draw.BiLinear,
		chmodTarget:  ChmodDirectory,
		namer:        SanitizeNamer,
		logger:       zerolog.Nop(),
		chmod:        os.Chmod,
	}
}

type Option func(*options)

func WithRegistry(r Registry) Option {
	return func(o *options) { o.registry = r }
}

func WithInterpolator(i draw.Interpolator) Option {
	return func(o *options) { o.interpolator = i }
}

func WithChmodTarget(t ChmodTarget) Option {
	return func(o *options) { o.chmodTarget = t }
}

func WithNamer(n Namer) Option {
	return func(o *options) {
		if n != nil {
			o.namer = n
		}
	}
}

func WithJPEGQuality(q int) Option {
	return func(o *options) { o.encode.JPEGQuality = q }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
