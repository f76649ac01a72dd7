package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// OutputName builds the output filename for a crop: the input's base name
// with a suffix and the requested extension, inside outputDir.
func OutputName(input, outputDir, suffix, ext string) string {
	base := filepath.Base(input)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i] // strip URL query/fragment
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "image"
	}
	return filepath.Join(outputDir, fmt.Sprintf("%s%s.%s", name, suffix, strings.ToLower(ext)))
}

// IsURL reports whether the source is an HTTP(S) reference.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
