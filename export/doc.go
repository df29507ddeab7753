// Package export renders mazes for humans: a standalone HTML document with
// one classed table cell per grid cell, or a PNG raster in the same
// palette, framed by a white border.
//
// What:
//
//   - HTML / HTMLFile: document titled and headed "Maze #<seed>", cells
//     classed cell-wall / cell-passage with cell-start / cell-goal markers
//     and optional cell-path route cells.
//   - PNG / PNGFile: image.Image adapter over the grid (CellPixels-square
//     blocks), bordered via image_utils and encoded with image/png.
//   - File: renderer dispatch by path extension (.html, .htm, .png).
//
// The solution is drawn only when requested AND a route is cached on the
// source; rendering never runs a search itself.
//
// Errors:
//
//   - ErrNilSource: absent source or grid.
//   - ErrUnsupportedFormat: File with an extension no renderer claims.
package export
