// Package pkg provides the core libraries for codia class diagrams.
//
// # Overview
//
// codia turns Go source code into UML-style class diagrams. The pkg
// directory is organized around the pipeline stages:
//
//  1. [analyze] - Extract classes, members, and inheritance from Go source
//  2. [model] - The class model shared by every stage
//  3. [diagram] - Grid layout and scene assembly
//  4. [diagram/sink] - SVG, PDF, and PNG output
//  5. [nodelink] - Graphviz inheritance hierarchy view
//  6. [pipeline] - Orchestration (analyze → layout → render) with caching
//
// # Quick Start
//
// Analyze a file and render it to SVG:
//
//	import (
//	    "github.com/codia/codia/pkg/analyze"
//	    "github.com/codia/codia/pkg/diagram"
//	    "github.com/codia/codia/pkg/diagram/sink"
//	)
//
//	m, _ := analyze.File("animals.go")
//	scene := diagram.Assemble(m.Classes, m.Relationships)
//	svg := sink.RenderSVG(scene)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Path:    "animals.go",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// [analyze] - Walks Go AST: structs become classes, fields become
// attributes, methods become operation signatures, and embedded types
// become inheritance relationships.
//
// [model] - Class, Relationship, and Model types plus the ordered
// ClassSet used by layout and serialization.
//
// [diagram] - Grid layout (parentless classes first), three-compartment
// box geometry, and inheritance edges with hollow triangle markers.
// Scenes are resolution-independent; [diagram/sink] scales them to
// pixels.
//
// [diagram/styles] - SVG primitive writers. The simple style draws
// light blue boxes with black strokes.
//
// [nodelink] - DOT generation and Graphviz rendering for the
// inheritance hierarchy view.
//
// [io] - JSON import and export of the class model, used by the parse
// command and accepted by render.
//
// [cache] - Artifact caches (file, Redis, null) keyed by model hash and
// render options.
//
// [pipeline] - The shared analyze → layout → render flow used by the
// CLI and the HTTP server.
//
// [errors] - Structured errors with stable codes, mapped to exit
// behavior in the CLI and HTTP statuses in the server.
//
// [observability] - Optional hooks for metrics and tracing around
// pipeline and cache events.
//
// [analyze]: https://pkg.go.dev/github.com/codia/codia/pkg/analyze
// [model]: https://pkg.go.dev/github.com/codia/codia/pkg/model
// [diagram]: https://pkg.go.dev/github.com/codia/codia/pkg/diagram
// [diagram/sink]: https://pkg.go.dev/github.com/codia/codia/pkg/diagram/sink
// [diagram/styles]: https://pkg.go.dev/github.com/codia/codia/pkg/diagram/styles
// [nodelink]: https://pkg.go.dev/github.com/codia/codia/pkg/nodelink
// [io]: https://pkg.go.dev/github.com/codia/codia/pkg/io
// [cache]: https://pkg.go.dev/github.com/codia/codia/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/codia/codia/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/codia/codia/pkg/errors
// [observability]: https://pkg.go.dev/github.com/codia/codia/pkg/observability
package pkg
