package diagram

import "github.com/codia/codia/pkg/model"

// Box geometry constants, in grid units.
const (
	// BoxWidth is fixed regardless of content length; long labels may
	// overflow visually.
	BoxWidth = 3.0

	// HeaderHeight is the height of the name compartment.
	HeaderHeight = 0.6

	// itemHeight is the vertical space per attribute or method row.
	itemHeight = 0.4

	// compartmentPad keeps empty compartments visible: every box shows
	// three distinct bands even with no attributes or methods.
	compartmentPad = 0.2

	// textInset is the left inset for attribute and method rows.
	textInset = 0.2

	nameFontSize = 0.28
	itemFontSize = 0.22
)

// BoxGeometry is the computed extent of one class box. It is derived
// from the class content on demand and never cached, so it always
// reflects the current attribute and method counts.
type BoxGeometry struct {
	Width            float64
	Height           float64
	HeaderHeight     float64
	AttributesHeight float64
	MethodsHeight    float64
}

// Geometry computes the box geometry for a class.
func Geometry(c *model.Class) BoxGeometry {
	g := BoxGeometry{
		Width:            BoxWidth,
		HeaderHeight:     HeaderHeight,
		AttributesHeight: compartmentHeight(len(c.Attributes)),
		MethodsHeight:    compartmentHeight(len(c.Methods)),
	}
	g.Height = g.HeaderHeight + g.AttributesHeight + g.MethodsHeight
	return g
}

func compartmentHeight(items int) float64 {
	if items > 0 {
		return float64(items)*itemHeight + compartmentPad
	}
	return compartmentPad
}

// drawBox appends the three-compartment box for c, centered at anchor:
// the outer rectangle, the two compartment dividers, the class name
// centered in the header band, and one left-aligned row per attribute
// ("- name") and method ("+ signature").
func drawBox(s *Scene, c *model.Class, anchor Point) {
	g := Geometry(c)
	left := anchor.X - g.Width/2
	bottom := anchor.Y - g.Height/2

	s.Boxes = append(s.Boxes, Box{
		Name: c.Name,
		X:    left, Y: bottom,
		W: g.Width, H: g.Height,
	})

	// Dividers: header boundary below the top edge, attribute/method
	// boundary above the bottom edge.
	headerY := bottom + g.Height - g.HeaderHeight
	methodsY := bottom + g.MethodsHeight
	s.Lines = append(s.Lines,
		Line{X1: left, Y1: headerY, X2: left + g.Width, Y2: headerY},
		Line{X1: left, Y1: methodsY, X2: left + g.Width, Y2: methodsY},
	)

	s.Labels = append(s.Labels, Label{
		X:      anchor.X,
		Y:      bottom + g.Height - g.HeaderHeight/2,
		Text:   c.Name,
		Size:   nameFontSize,
		Anchor: AnchorMiddle,
		Bold:   true,
	})

	for i, attr := range c.Attributes {
		s.Labels = append(s.Labels, Label{
			X:      left + textInset,
			Y:      bottom + g.MethodsHeight + g.AttributesHeight - (float64(i)+0.5)*itemHeight,
			Text:   "- " + attr,
			Size:   itemFontSize,
			Anchor: AnchorStart,
		})
	}
	for i, method := range c.Methods {
		s.Labels = append(s.Labels, Label{
			X:      left + textInset,
			Y:      bottom + g.MethodsHeight - (float64(i)+0.5)*itemHeight,
			Text:   "+ " + method,
			Size:   itemFontSize,
			Anchor: AnchorStart,
		})
	}
}
