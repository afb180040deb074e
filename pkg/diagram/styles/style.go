// Package styles defines the visual appearance of rendered diagrams.
//
// A [Style] receives positioned primitives in final output coordinates
// (pixels, y growing downward) and writes SVG fragments into a buffer.
// Sinks convert scene geometry into these types before dispatching.
package styles

import "bytes"

// Style defines the visual appearance for diagram rendering.
// Implementations control how boxes, lines, markers, and text are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBox writes the SVG for one class box rectangle.
	RenderBox(buf *bytes.Buffer, b Box)
	// RenderLine writes the SVG for a divider or relationship edge.
	RenderLine(buf *bytes.Buffer, l Line)
	// RenderMarker writes the SVG for a generalization arrowhead.
	RenderMarker(buf *bytes.Buffer, m Marker)
	// RenderLabel writes the SVG for a text run.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Box contains all data needed to render a single class box.
type Box struct {
	ID         string  // Class name, used as element id
	X, Y, W, H float64 // Position (top-left) and dimensions in pixels
}

// Line contains positioning data for a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Marker is a small closed polygon, rendered hollow (white fill, dark
// outline) per UML generalization notation.
type Marker struct {
	Points [][2]float64
}

// Label is a positioned text run. Y is the vertical center of the text.
type Label struct {
	X, Y   float64
	Text   string
	Size   float64 // font size in pixels
	Middle bool    // center-anchored when true, start-anchored otherwise
	Bold   bool
}
