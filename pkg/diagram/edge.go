package diagram

import "math"

// Edge footprint constants. Edge endpoints are computed against a fixed
// 3.0×2.0 box approximation rather than each box's true height; see the
// package notes in DESIGN.md for why this inaccuracy is kept.
const (
	edgeBoxWidth  = 3.0
	edgeBoxHeight = 2.0

	// triangleSize is the circumradius of the generalization marker.
	triangleSize = 0.15
)

// drawInheritance appends one generalization edge from the child box
// toward the parent box: a straight segment between the two footprint
// edge points plus a hollow triangle at the parent end.
//
// The dominant axis of the center-to-center vector picks which side of
// each footprint the edge attaches to. When both anchors coincide the
// sign terms vanish and the edge degenerates to a point at the shared
// center; nothing distinctive is drawn.
func drawInheritance(s *Scene, parent, child Point) {
	dx := child.X - parent.X
	dy := child.Y - parent.Y
	if length := math.Hypot(dx, dy); length > 0 {
		dx /= length
		dy /= length
	}

	var parentEdge, childEdge Point
	if math.Abs(dx) > math.Abs(dy) {
		parentEdge = Point{X: parent.X + sign(dx)*edgeBoxWidth/2, Y: parent.Y}
		childEdge = Point{X: child.X - sign(dx)*edgeBoxWidth/2, Y: child.Y}
	} else {
		parentEdge = Point{X: parent.X, Y: parent.Y + sign(dy)*edgeBoxHeight/2}
		childEdge = Point{X: child.X, Y: child.Y - sign(dy)*edgeBoxHeight/2}
	}

	s.Lines = append(s.Lines, Line{
		X1: childEdge.X, Y1: childEdge.Y,
		X2: parentEdge.X, Y2: parentEdge.Y,
	})

	s.Markers = append(s.Markers, Marker{
		Points: trianglePoints(parentEdge, childEdge),
	})
}

// trianglePoints computes an equilateral triangle centered on the parent
// edge point with one vertex pointing along the edge back toward the
// parent box.
func trianglePoints(center, from Point) []Point {
	angle := math.Atan2(center.Y-from.Y, center.X-from.X)

	pts := make([]Point, 3)
	for k := range pts {
		theta := angle + float64(k)*2*math.Pi/3
		pts[k] = Point{
			X: center.X + triangleSize*math.Cos(theta),
			Y: center.Y + triangleSize*math.Sin(theta),
		}
	}
	return pts
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
