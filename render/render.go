// Package render draws a grid, and optionally a search result, as an
// image: terrain by cell kind, with visited, path, start, and goal
// overlays. It exists for diagnostics and documentation shots; the
// engine itself never depends on it.
//
// A Renderer implements image.Image over the grid surface, so it can
// be encoded directly or composed with other layers; RGBA materializes
// it into a concrete *image.RGBA.
package render

import (
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// DefaultCellSize is the pixel width and height of one grid cell.
const DefaultCellSize = 12

// Cell fill colors, chosen to stay readable on small cells.
var (
	colorEmpty   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorWall    = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorWeight  = color.RGBA{R: 0xd2, G: 0xb4, B: 0x8c, A: 0xff}
	colorVisited = color.RGBA{R: 0xae, G: 0xd6, B: 0xf1, A: 0xff}
	colorPath    = color.RGBA{R: 0xf9, G: 0xe7, B: 0x9f, A: 0xff}
	colorStart   = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colorGoal    = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colorLine    = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithCellSize sets the cell edge length in pixels (minimum 2).
func WithCellSize(px int) Option {
	return func(r *Renderer) {
		if px >= 2 {
			r.cell = px
		}
	}
}

// WithResult overlays a search result: visited cells, the final path,
// and the start/goal endpoints (taken from the path when found).
func WithResult(res search.Result) Option {
	return func(r *Renderer) {
		r.visited = make(map[grid.Point]bool, len(res.VisitedOrder))
		for _, p := range res.VisitedOrder {
			r.visited[p] = true
		}
		r.path = make(map[grid.Point]bool, len(res.Path))
		for _, p := range res.Path {
			r.path[p] = true
		}
		if len(res.Path) > 0 {
			start, goal := res.Path[0], res.Path[len(res.Path)-1]
			r.start, r.goal = &start, &goal
		}
	}
}

// WithEndpoints marks start and goal explicitly, useful for unfound
// results, where the path carries no endpoints.
func WithEndpoints(start, goal grid.Point) Option {
	return func(r *Renderer) {
		s, g := start, goal
		r.start, r.goal = &s, &g
	}
}

// Renderer lazily maps pixels to cells; it implements image.Image and
// holds no pixel buffer of its own.
type Renderer struct {
	g       *grid.Grid
	cell    int
	visited map[grid.Point]bool
	path    map[grid.Point]bool
	start   *grid.Point
	goal    *grid.Point
}

// New builds a Renderer over g. The grid must outlive the renderer and
// stay unmodified while the renderer is read.
func New(g *grid.Grid, opts ...Option) *Renderer {
	r := &Renderer{g: g, cell: DefaultCellSize}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ColorModel implements image.Image.
func (r *Renderer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image: one cell-sized square per grid cell.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.g.Cols()*r.cell, r.g.Rows()*r.cell)
}

// At implements image.Image. Overlay precedence, strongest first:
// start/goal, path, visited, terrain. Cell borders draw as gridlines.
func (r *Renderer) At(x, y int) color.Color {
	if x%r.cell == 0 || y%r.cell == 0 {
		return colorLine
	}
	p := grid.Pt(y/r.cell, x/r.cell)
	switch {
	case r.start != nil && p == *r.start:
		return colorStart
	case r.goal != nil && p == *r.goal:
		return colorGoal
	case r.path[p]:
		return colorPath
	case r.visited[p]:
		return colorVisited
	}
	switch r.g.KindAt(p) {
	case grid.Wall:
		return colorWall
	case grid.Weight:
		return colorWeight
	default:
		return colorEmpty
	}
}

// RGBA materializes the renderer into a concrete RGBA image.
func (r *Renderer) RGBA() *image.RGBA {
	return image_utils.ToRGBA(r)
}
