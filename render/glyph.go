package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dancevis"
)

// glyphRadius returns the on-screen radius, in pixels, of a size class.
func glyphRadius(size dancevis.DancerSize) float64 {
	switch size {
	case dancevis.SizeSmall:
		return 5
	case dancevis.SizeLarge:
		return 12
	default:
		return 8
	}
}

// glyphPoints returns the screen-space outline of a square or triangle glyph
// centred on center and turned to o. A triangle points along o. Screen Y
// grows downward, so the turn is mirrored.
func glyphPoints(g dancevis.DancerGlyph, center dancevis.Position, o dancevis.Orientation, radius float64) []dancevis.Position {
	var corners int
	var offset float64
	switch g {
	case dancevis.GlyphTriangle:
		corners = 3
	default:
		corners = 4
		offset = math.Pi / 4
	}
	pts := make([]dancevis.Position, corners)
	step := 2 * math.Pi / float64(corners)
	for i := range pts {
		a := o.InRadians() + offset + step*float64(i)
		pts[i] = dancevis.Position{
			X: center.X + radius*math.Cos(a),
			Y: center.Y - radius*math.Sin(a),
		}
	}
	return pts
}

// appendPolygonFan appends a fan-triangulated, untextured polygon in clr to
// verts and inds. Fewer than 3 points appends nothing.
func appendPolygonFan(verts []ebiten.Vertex, inds []uint16, points []dancevis.Position, clr dancevis.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	// Vertex colors are premultiplied.
	cr := float32(clr.R * clr.A)
	cg := float32(clr.G * clr.A)
	cb := float32(clr.B * clr.A)
	ca := float32(clr.A)
	for _, p := range points {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint16(i+1), base+uint16(i+2))
	}
	return verts, inds
}

// --- White pixel singleton (no sync.Once, rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of untextured glyphs.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
