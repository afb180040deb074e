package diagram

import (
	"math"

	"github.com/codia/codia/pkg/model"
)

// Pitch is the grid cell size in units. Each class is anchored at the
// center of a Pitch×Pitch cell.
const Pitch = 4.0

// maxCols caps the grid width so large models grow downward rather than
// into very wide, flat diagrams.
const maxCols = 5

// Layout assigns every class a unique anchor point on a rectangular
// grid and returns the grid extent.
//
// The column count is max(1, min(5, floor(sqrt(n)))); rows follow from
// the class count. Classes without parents are placed first, then the
// rest, with relative order preserved within each group. Placement runs
// left to right, top to bottom, so parentless classes gravitate toward
// the top rows and inheritance loosely flows downward. This is a
// heuristic, not a topological layering: multi-level hierarchies get no
// special treatment.
//
// Every class receives a position; an empty set yields an empty map and
// a zero-height grid.
func Layout(classes *model.ClassSet) (positions map[string]Point, gridWidth, gridHeight float64) {
	n := classes.Len()
	cols := max(1, min(maxCols, int(math.Sqrt(float64(n)))))
	rows := int(math.Ceil(float64(n) / float64(cols)))

	gridWidth = float64(cols) * Pitch
	gridHeight = float64(rows) * Pitch

	positions = make(map[string]Point, n)
	i := 0
	place := func(name string) {
		row := i / cols
		col := i % cols
		positions[name] = Point{
			X: float64(col)*Pitch + Pitch/2,
			Y: gridHeight - (float64(row)*Pitch + Pitch/2),
		}
		i++
	}

	for _, c := range classes.Classes() {
		if !c.HasParents() {
			place(c.Name)
		}
	}
	for _, c := range classes.Classes() {
		if c.HasParents() {
			place(c.Name)
		}
	}

	return positions, gridWidth, gridHeight
}
