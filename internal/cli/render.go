package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codia/codia/internal/config"
	"github.com/codia/codia/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "pdf", "png"
	vizType  string   // "diagram" or "nodelink"
	style    string   // visual style
	scale    float64  // pixels per grid unit
	detailed bool     // include members in nodelink labels
	refresh  bool     // bypass the artifact cache
	show     bool     // open the result with the platform viewer
	config   string   // config file path
}

// newRenderCmd creates the render command for generating diagrams.
// Input may be a Go source file, a directory of Go source, or a model
// JSON file produced by parse.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file|dir]",
		Short: "Render a class diagram from Go source or a model file",
		Long: `Render a UML-style class diagram.

The input is analyzed on the fly when it is Go source, or imported
directly when it is a model JSON file written by codia parse.

Examples:
  codia render animals.go                       # writes animals.svg
  codia render animals.go -o diagram.png        # PNG via librsvg
  codia render model.json -f svg,png,pdf        # several formats at once
  codia render animals.go --type nodelink       # Graphviz hierarchy view
  codia render animals.go --show                # open the result`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if opts.style == "" {
				opts.style = cfg.Render.Style
			}
			if opts.scale == 0 {
				opts.scale = cfg.Render.Scale
			}
			opts.formats = parseFormats(formatsStr, cfg.Render.Format)
			return runRender(cmd.Context(), args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", pipeline.VizDiagram, "visualization type: diagram (default), nodelink")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per grid unit (default 60)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show attributes and methods in nodelink labels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the artifact cache and re-render")
	cmd.Flags().BoolVarP(&opts.show, "show", "s", false, "open the rendered diagram")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/codia/config.toml)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats,
// falling back to the configured default.
func parseFormats(s, fallback string) []string {
	if s == "" {
		s = fallback
	}
	if s == "" {
		s = "svg"
	}
	return strings.Split(s, ",")
}

// formatExts is the set of recognized output file extensions.
var formatExts = map[string]bool{"svg": true, "pdf": true, "png": true}

// basePath derives the base output path from the output and input
// paths. If output is empty, it strips the extension from input. If
// output has a format extension (.svg, .png, .pdf), that extension is
// stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if formatExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath resolves the target path for one format.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	return basePath(output, input) + "." + format
}

// runRender runs the pipeline and writes every requested format. The
// artifact cache comes from the same config section the server uses,
// so repeated renders of an unchanged model are served from cache
// unless --refresh is given.
func runRender(ctx context.Context, input string, cfg config.Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	c, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, logger)
	defer func() {
		if err := runner.Close(); err != nil {
			logger.Warn("closing cache failed", "err", err)
		}
	}()

	res, err := runner.Execute(ctx, pipeline.Options{
		Path:     input,
		VizType:  opts.vizType,
		Formats:  opts.formats,
		Style:    opts.style,
		Scale:    opts.scale,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	var outputs []string
	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		data := res.Artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", path, len(data))
		outputs = append(outputs, path)
	}

	prog.done(fmt.Sprintf("Rendered %d classes", res.Stats.ClassCount))
	printSuccess("Rendered %s", countSummary(res.Model))
	for _, path := range outputs {
		printFile(path)
	}

	if opts.show && len(outputs) > 0 {
		return openViewer(ctx, outputs[0])
	}
	return nil
}

// openViewer opens path with the platform's default viewer.
func openViewer(ctx context.Context, path string) error {
	opener := "xdg-open"
	switch runtime.GOOS {
	case "darwin":
		opener = "open"
	case "windows":
		opener = "explorer"
	}
	cmd := exec.CommandContext(ctx, opener, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// Viewer ownership passes to the desktop; don't wait for it.
	go func() { _ = cmd.Wait() }()
	return nil
}
