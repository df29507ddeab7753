package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazegen/grid"
)

// Rendering geometry, exported so callers can size the output or locate a
// cell in it: every grid cell becomes a CellPixels-square block and the
// whole maze is framed by a BorderPixels-wide white border.
const (
	CellPixels   = 14
	BorderPixels = 4
)

// PNG palette, mirroring the HTML cell classes.
var (
	colorWall    = color.RGBA{R: 0x1f, G: 0x24, B: 0x30, A: 0xff}
	colorPassage = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorStart   = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	colorGoal    = color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
	colorPath    = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
)

// PNG rasterizes src and encodes it to w. The cached route is painted only
// when drawSolution is true.
func PNG(w io.Writer, src Source, drawSolution bool) error {
	if src == nil || src.Grid() == nil {
		return ErrNilSource
	}
	img := &mazeImage{src: src, onPath: routeSet(src, drawSolution)}
	framed := image_utils.AddImageBorder(img, color.White, BorderPixels)
	return png.Encode(w, image_utils.ToRGBA(framed))
}

// PNGFile renders the image to path, creating or truncating the file.
func PNGFile(path string, src Source, drawSolution bool) error {
	return toFile(path, src, drawSolution, PNG)
}

// mazeImage adapts a Source to image.Image, delegating every pixel to the
// color of the grid cell it falls into.
type mazeImage struct {
	src    Source
	onPath map[grid.Position]struct{}
}

func (m *mazeImage) ColorModel() color.Model { return color.RGBAModel }

func (m *mazeImage) Bounds() image.Rectangle {
	g := m.src.Grid()
	return image.Rect(0, 0, g.Cols()*CellPixels, g.Rows()*CellPixels)
}

func (m *mazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	return m.cellColor(grid.Pos(y/CellPixels, x/CellPixels))
}

// cellColor mirrors cellClass precedence: start and goal win over the
// route, the route wins over plain passability.
func (m *mazeImage) cellColor(p grid.Position) color.Color {
	if p == m.src.Start() {
		return colorStart
	}
	if p == m.src.Goal() {
		return colorGoal
	}
	if _, ok := m.onPath[p]; ok {
		return colorPath
	}
	if m.src.Grid().At(p.Row, p.Col) == grid.Passable {
		return colorPassage
	}
	return colorWall
}
