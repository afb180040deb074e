package diagram

// Point is a 2D location in grid units, y growing upward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the axis-aligned extent of a scene.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Box is a positioned class box in the scene.
// X and Y are the lower-left corner; Name is the class identity and
// doubles as the element id in SVG output.
type Box struct {
	Name       string
	X, Y, W, H float64
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Line is a straight segment (compartment divider or relationship edge).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Marker is a small filled polygon, currently only the hollow triangle
// that terminates a generalization edge at the parent side.
type Marker struct {
	Points []Point
}

// Text anchor modes.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
)

// Label is a positioned text run. Size is the font size in grid units;
// Anchor selects horizontal alignment at (X, Y). Y is the vertical
// center of the rendered text.
type Label struct {
	X, Y   float64
	Text   string
	Size   float64
	Anchor string
	Bold   bool
}

// Scene is the finished, renderable diagram: an ordered display list of
// primitives plus the canvas extent and title. A Scene does not know how
// to export itself; sinks consume it.
type Scene struct {
	Title   string
	Bounds  Bounds
	Boxes   []Box
	Lines   []Line
	Markers []Marker
	Labels  []Label
}
