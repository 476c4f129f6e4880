package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

var fileNameReplacer = strings.NewReplacer(" ", "-", "%", "-")

// SanitizeFileName returns the base name of p with every space and '%'
// replaced by '-'.
func SanitizeFileName(p string) string {
	return fileNameReplacer.Replace(filepath.Base(p))
}

// SlugFileName slugifies the base name of p while keeping its extension.
func SlugFileName(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)

	name := slug.Make(strings.TrimSuffix(base, ext))
	if name == "" {
		name = "image"
	}

	return name + strings.ToLower(ext)
}

// ParseFileMode parses an octal permission string such as "0644".
func ParseFileMode(s string) (fs.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty file mode")
	}

	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", s, err)
	}

	if v > 0o777 {
		return 0, fmt.Errorf("file mode %q out of range", s)
	}

	return fs.FileMode(v), nil
}
