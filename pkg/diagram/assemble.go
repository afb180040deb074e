package diagram

import "github.com/codia/codia/pkg/model"

// DefaultTitle is attached to every assembled scene.
const DefaultTitle = "Class Diagram"

// canvasMargin pads the grid extent on all sides.
const canvasMargin = 1.0

// Assemble runs the full pipeline once: grid layout, one box per class,
// one generalization edge per inheritance relationship whose parent and
// child are both positioned. Relationships of other kinds, and edges
// with a dangling endpoint, are skipped silently.
//
// The returned scene is a fresh value owned by the caller; concurrent
// Assemble calls never share drawing state. Assembling the same
// immutable model twice produces geometrically identical scenes.
func Assemble(classes *model.ClassSet, relationships []model.Relationship) *Scene {
	positions, gridWidth, gridHeight := Layout(classes)

	s := &Scene{
		Title: DefaultTitle,
		Bounds: Bounds{
			MinX: -canvasMargin, MinY: -canvasMargin,
			MaxX: gridWidth + canvasMargin, MaxY: gridHeight + canvasMargin,
		},
	}

	for _, c := range classes.Classes() {
		drawBox(s, c, positions[c.Name])
	}

	for _, rel := range relationships {
		if rel.Kind != model.RelKindInheritance {
			continue
		}
		parent, okP := positions[rel.Parent]
		child, okC := positions[rel.Child]
		if !okP || !okC {
			continue
		}
		drawInheritance(s, parent, child)
	}

	return s
}
