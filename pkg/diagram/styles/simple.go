package styles

import (
	"bytes"
	"fmt"
)

// Simple is a clean, flat style: light blue boxes with thin black
// outlines, plain black text.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderBox writes a class box rectangle.
func (Simple) RenderBox(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf,
		`  <rect id="box-%s" class="box" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="lightblue" fill-opacity="0.3" stroke="black" stroke-width="1"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H)
}

// RenderLine writes a divider or edge segment.
func (Simple) RenderLine(buf *bytes.Buffer, l Line) {
	fmt.Fprintf(buf,
		`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="1"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2)
}

// RenderMarker writes a hollow polygon marker.
func (Simple) RenderMarker(buf *bytes.Buffer, m Marker) {
	buf.WriteString(`  <polygon points="`)
	for i, p := range m.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p[0], p[1])
	}
	buf.WriteString(`" fill="white" stroke="black" stroke-width="1"/>` + "\n")
}

// RenderLabel writes a text run.
func (Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	anchor := "start"
	if l.Middle {
		anchor = "middle"
	}
	weight := ""
	if l.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf,
		`  <text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="central" font-family="Helvetica, Arial, sans-serif" font-size="%.1f"%s>%s</text>`+"\n",
		l.X, l.Y, anchor, l.Size, weight, EscapeXML(l.Text))
}

// Ensure Simple implements Style.
var _ Style = Simple{}
