package pipeline

import (
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/codia/codia/pkg/analyze"
	"github.com/codia/codia/pkg/cache"
	"github.com/codia/codia/pkg/diagram"
	"github.com/codia/codia/pkg/diagram/sink"
	"github.com/codia/codia/pkg/diagram/styles"
	"github.com/codia/codia/pkg/errors"
	pkgio "github.com/codia/codia/pkg/io"
	"github.com/codia/codia/pkg/model"
	"github.com/codia/codia/pkg/nodelink"
	"github.com/codia/codia/pkg/observability"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil
// logger falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete analyze → layout → render pipeline.
// It fails with ErrCodeNoClasses when the input contains no classes,
// since every downstream consumer treats an empty diagram as an error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Analyze
	analyzeStart := time.Now()
	observability.Pipeline().OnAnalyzeStart(ctx, opts.Path)
	m, err := r.loadModel(opts)
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	observability.Pipeline().OnAnalyzeComplete(ctx, opts.Path, classCount(m), result.Stats.AnalyzeTime, err)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, errors.New(errors.ErrCodeNoClasses, "no classes found")
	}
	result.Model = m
	result.Stats.ClassCount = m.Classes.Len()
	result.Stats.RelationshipCount = len(m.Relationships)

	logger.Debug("analyzed source",
		"classes", result.Stats.ClassCount,
		"relationships", result.Stats.RelationshipCount,
		"duration", result.Stats.AnalyzeTime)

	// Artifact cache keys derive from the model, not the raw input, so
	// a source edit that doesn't change the model still hits the cache.
	modelHash := r.modelHash(m)

	if !opts.Refresh && modelHash != "" {
		if artifacts, ok := r.cachedArtifacts(ctx, modelHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheHit = true
			return result, nil
		}
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.VizType, m.Classes.Len())
	var scene *diagram.Scene
	var dot string
	if opts.VizType == VizNodelink {
		dot = nodelink.ToDOT(m, nodelink.Options{Detailed: opts.Detailed})
	} else {
		scene = diagram.Assemble(m.Classes, m.Relationships)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, opts.VizType, result.Stats.LayoutTime, nil)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		var data []byte
		var err error
		if opts.VizType == VizNodelink {
			data, err = renderNodelink(dot, format)
		} else {
			data, err = renderScene(scene, format, opts.Style, opts.Scale)
		}
		if err != nil {
			result.Stats.RenderTime = time.Since(renderStart)
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
			return nil, err
		}
		result.Artifacts[format] = data

		if modelHash != "" {
			key := r.artifactKey(modelHash, format, opts)
			if err := r.Cache.Set(ctx, key, data, TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	logger.Debug("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the class model without running the layout and render
// stages.
func (r *Runner) Load(opts Options) (*model.Model, error) {
	if opts.Source == "" && opts.Path == "" {
		return nil, errors.New(errors.ErrCodeInvalidSource, "no source provided")
	}
	return r.loadModel(opts)
}

// loadModel resolves the model from the options: inline source,
// a model JSON file, a source file, or a directory.
func (r *Runner) loadModel(opts Options) (*model.Model, error) {
	if opts.Source != "" {
		return analyze.Source(opts.Source)
	}
	if strings.HasSuffix(opts.Path, ".json") {
		return pkgio.ImportJSON(opts.Path)
	}
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read %s", opts.Path)
	}
	if info.IsDir() {
		return analyze.Dir(opts.Path)
	}
	return analyze.File(opts.Path)
}

// modelHash returns a stable hash of the model's JSON form, or "" if
// the model cannot be serialized.
func (r *Runner) modelHash(m *model.Model) string {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(m, &buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}

// cachedArtifacts fetches all requested formats from the cache.
// Returns ok only when every format is present.
func (r *Runner) cachedArtifacts(ctx context.Context, modelHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.artifactKey(modelHash, format, opts))
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			return nil, false
		}
		artifacts[format] = data
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return artifacts, true
}

// artifactKey builds the cache key for one rendered format. The
// visualization type and label detail are folded into the format part
// so diagram and nodelink artifacts never collide.
func (r *Runner) artifactKey(modelHash, format string, opts Options) string {
	variant := opts.VizType + "/" + format
	if opts.Detailed {
		variant += "/detailed"
	}
	return cache.DiagramKey([]byte(modelHash), variant, opts.Style, opts.Scale)
}

// Close releases the cache resources.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// styleFor resolves a validated style name to its implementation.
// Unknown names fall back to the default so renderScene never fails
// on a name that ValidateAndSetDefaults already accepted.
func styleFor(name string) styles.Style {
	switch name {
	case "simple":
		return styles.Simple{}
	default:
		return styles.Simple{}
	}
}

func renderScene(scene *diagram.Scene, format, style string, scale float64) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithStyle(styleFor(style)), sink.WithScale(scale)}
	switch format {
	case "svg":
		return sink.RenderSVG(scene, svgOpts...), nil
	case "png":
		return sink.RenderPNG(scene, sink.WithPNGSVGOptions(svgOpts...))
	case "pdf":
		return sink.RenderPDF(scene, sink.WithPDFSVGOptions(svgOpts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
}

func renderNodelink(dot, format string) ([]byte, error) {
	switch format {
	case "svg":
		return nodelink.RenderSVG(dot)
	case "png":
		return nodelink.RenderPNG(dot, 2.0)
	case "pdf":
		return nodelink.RenderPDF(dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
}

func classCount(m *model.Model) int {
	if m == nil {
		return 0
	}
	return m.Classes.Len()
}
