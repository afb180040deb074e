// Package pipeline runs the analyze → layout → render pipeline.
//
// The CLI and the HTTP server both turn Go source into diagram
// artifacts. Centralizing that flow here keeps caching and validation
// behavior identical across the two entry points.
//
// # Stages
//
//  1. Analyze: extract the class model from Go source
//  2. Layout: assemble the diagram scene (or DOT text for nodelink)
//  3. Render: generate output bytes in the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  src,
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/model"
)

// Visualization types.
const (
	VizDiagram  = "diagram"  // grid-based class diagram
	VizNodelink = "nodelink" // Graphviz inheritance hierarchy
)

// Defaults applied by Options.ValidateAndSetDefaults.
const (
	DefaultVizType = VizDiagram
	DefaultStyle   = "simple"
	DefaultFormat  = "svg"
	DefaultScale   = 60.0
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 24 * time.Hour

// Options configures a pipeline execution. Exactly one of Source or
// Path must be set.
type Options struct {
	Source string // Go source text to analyze
	Path   string // file or directory to analyze

	VizType  string   // "diagram" (default) or "nodelink"
	Formats  []string // "svg" (default), "png", "pdf"
	Style    string   // "simple" (default)
	Scale    float64  // pixels per grid unit (default 60)
	Detailed bool     // include members in nodelink labels

	Refresh bool // bypass the cache and re-render

	Logger *log.Logger
}

// ValidateAndSetDefaults fills in defaults and rejects invalid option
// combinations.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Source == "" && o.Path == "" {
		return errors.New(errors.ErrCodeInvalidSource, "no source provided")
	}
	if o.Source != "" && o.Path != "" {
		return errors.New(errors.ErrCodeInvalidSource, "source and path are mutually exclusive")
	}

	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.VizType != VizDiagram && o.VizType != VizNodelink {
		return errors.New(errors.ErrCodeUnsupported,
			"invalid type: %s (must be 'diagram' or 'nodelink')", o.VizType)
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Style != "simple" {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %s (must be 'simple')", o.Style)
	}

	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		switch f {
		case "svg", "png", "pdf":
		default:
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// Stats records per-stage timing and model size.
type Stats struct {
	AnalyzeTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration

	ClassCount        int
	RelationshipCount int
}

// Result is the outcome of a pipeline execution.
type Result struct {
	Model     *model.Model
	Artifacts map[string][]byte // format -> rendered bytes
	Stats     Stats
	CacheHit  bool // all artifacts served from cache
}
