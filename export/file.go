package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File renders src to path, picking the renderer from the extension:
// .html and .htm produce the HTML document, .png the raster image.
// Anything else is ErrUnsupportedFormat.
func File(path string, src Source, drawSolution bool) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTMLFile(path, src, drawSolution)
	case ".png":
		return PNGFile(path, src, drawSolution)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// toFile runs one renderer against a freshly created file, reporting the
// close error when the render itself succeeded.
func toFile(path string, src Source, drawSolution bool, render func(io.Writer, Source, bool) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err = render(f, src, drawSolution); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
