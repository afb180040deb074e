// Package nodelink renders the inheritance hierarchy as a node-link
// diagram via Graphviz.
//
// This is the alternative view to the grid-based class diagram: one box
// per class, one arrow per inheritance edge, laid out by the dot engine.
// Edges point from child to parent with a hollow arrowhead, matching
// UML generalization, and rankdir=BT keeps parents on top.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/codia/codia/pkg/model"
	"github.com/codia/codia/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes attributes and methods in node labels.
	// When false, only the class name is shown.
	Detailed bool
}

// ToDOT converts a class model to Graphviz DOT format.
// Relationships with an endpoint missing from the class set are
// skipped, mirroring the class diagram renderer.
func ToDOT(m *model.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=onormal, arrowsize=1.5];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, c := range m.Classes.Classes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", c.Name, fmtLabel(c, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, rel := range m.Relationships {
		if rel.Kind != model.RelKindInheritance {
			continue
		}
		if _, ok := m.Classes.Get(rel.Parent); !ok {
			continue
		}
		if _, ok := m.Classes.Get(rel.Child); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", rel.Child, rel.Parent)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c *model.Class, detailed bool) string {
	if !detailed {
		return c.Name
	}

	var parts []string
	for _, a := range c.Attributes {
		parts = append(parts, "- "+a)
	}
	for _, m := range c.Methods {
		parts = append(parts, "+ "+m)
	}
	if len(parts) == 0 {
		return c.Name
	}
	return c.Name + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
