package sink

import (
	"bytes"
	"fmt"

	"github.com/codia/codia/pkg/diagram"
	"github.com/codia/codia/pkg/diagram/styles"
)

// DefaultScale is the pixel size of one grid unit.
const DefaultScale = 60.0

const titleFontUnits = 0.35

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	scale float64
	title bool
}

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithScale sets the pixels-per-grid-unit factor (default 60).
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithoutTitle suppresses the diagram title.
func WithoutTitle() SVGOption { return func(r *svgRenderer) { r.title = false } }

// RenderSVG renders a scene as a standalone SVG document.
//
// Scene coordinates are in grid units with y growing upward; the sink
// flips the y axis and scales to pixels. Draw order is boxes, then
// lines, then markers, then text, so labels are never occluded.
func RenderSVG(scene *diagram.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, scale: DefaultScale, title: true}
	for _, opt := range opts {
		opt(&r)
	}

	width := scene.Bounds.Width() * r.scale
	height := scene.Bounds.Height() * r.scale

	// Model → pixel transforms.
	px := func(x float64) float64 { return (x - scene.Bounds.MinX) * r.scale }
	py := func(y float64) float64 { return (scene.Bounds.MaxY - y) * r.scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	r.style.RenderDefs(&buf)

	for _, b := range scene.Boxes {
		r.style.RenderBox(&buf, styles.Box{
			ID: b.Name,
			X:  px(b.X), Y: py(b.Y + b.H),
			W: b.W * r.scale, H: b.H * r.scale,
		})
	}
	for _, l := range scene.Lines {
		r.style.RenderLine(&buf, styles.Line{
			X1: px(l.X1), Y1: py(l.Y1),
			X2: px(l.X2), Y2: py(l.Y2),
		})
	}
	for _, m := range scene.Markers {
		pts := make([][2]float64, len(m.Points))
		for i, p := range m.Points {
			pts[i] = [2]float64{px(p.X), py(p.Y)}
		}
		r.style.RenderMarker(&buf, styles.Marker{Points: pts})
	}
	for _, l := range scene.Labels {
		r.style.RenderLabel(&buf, styles.Label{
			X: px(l.X), Y: py(l.Y),
			Text:   l.Text,
			Size:   l.Size * r.scale,
			Middle: l.Anchor == diagram.AnchorMiddle,
			Bold:   l.Bold,
		})
	}

	if r.title && scene.Title != "" {
		r.style.RenderLabel(&buf, styles.Label{
			X: width / 2, Y: titleFontUnits * r.scale,
			Text:   scene.Title,
			Size:   titleFontUnits * r.scale,
			Middle: true,
			Bold:   true,
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
