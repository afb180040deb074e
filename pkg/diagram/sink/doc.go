// Package sink provides output format renderers for class diagram scenes.
//
// A sink transforms an assembled [diagram.Scene] into a final output
// format:
//
//   - SVG: standalone vector output, the base format
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// Basic usage:
//
//	scene := diagram.Assemble(classes, rels)
//	svg := sink.RenderSVG(scene, sink.WithScale(80))
//	png, err := sink.RenderPNG(scene)
//
// PDF and PNG render by first generating SVG, then converting via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/codia/codia/pkg/render.ToPDF
// [render.ToPNG]: github.com/codia/codia/pkg/render.ToPNG
package sink
