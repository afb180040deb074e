// Package diagram is the layout and rendering engine for UML-style
// class diagrams.
//
// # Overview
//
// The engine turns a [model.ClassSet] plus its inheritance relationships
// into a [Scene], a finished display list of drawing primitives:
//
//	positions, w, h := diagram.Layout(classes)   // grid placement
//	scene := diagram.Assemble(classes, rels)     // full pipeline
//
// [Assemble] runs the whole pipeline once: layout, one three-compartment
// box per class, one generalization edge per inheritance relationship.
// The Scene is self-contained and owned by the caller; the engine keeps
// no global drawing state, so concurrent Assemble calls are independent.
//
// # Coordinate system
//
// All scene coordinates are in grid units with y growing upward. The
// grid pitch is 4 units per cell and every class box is anchored at its
// cell center. Output sinks (see [sink]) are responsible for flipping
// the y axis and scaling to pixels.
//
// # Degenerate inputs
//
// The engine never fails. Relationships whose parent or child has no
// position are dropped, duplicate class names have already collapsed in
// the ClassSet, and an empty set yields an empty position map. Callers
// should treat an empty model as "nothing to draw" and skip Assemble.
//
// [sink]: github.com/codia/codia/pkg/diagram/sink
package diagram
