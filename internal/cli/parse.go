package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codia/codia/pkg/analyze"
	pkgio "github.com/codia/codia/pkg/io"
	"github.com/codia/codia/pkg/model"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path (stdout if "-")
}

// newParseCmd creates the parse command for extracting the class model
// from Go source. The model is written as JSON, which the render
// command accepts as input.
func newParseCmd() *cobra.Command {
	opts := parseOpts{}

	cmd := &cobra.Command{
		Use:   "parse [file|dir]",
		Short: "Extract the class model from Go source",
		Long: `Extract classes, attributes, methods, and inheritance relationships
from Go source and write them as a JSON model.

Examples:
  codia parse animals.go                 # Single file, writes animals.json
  codia parse ./pkg/zoo -o model.json    # All .go files in a directory
  codia parse animals.go -o -            # Write the model to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .json, or - for stdout)")

	return cmd
}

func runParse(cmd *cobra.Command, input string, opts *parseOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := analyzeInput(input)
	if err != nil {
		return err
	}

	logger.Debugf("Analyzed %s", input)
	if m.IsEmpty() {
		logger.Warnf("No classes found in %s", input)
	}

	output := opts.output
	if output == "" {
		output = modelPath(input)
	}

	if output == "-" {
		if err := pkgio.WriteJSON(m, cmd.OutOrStdout()); err != nil {
			return err
		}
	} else if err := pkgio.ExportJSON(m, output); err != nil {
		return err
	}

	prog.done(countSummary(m) + " -> " + output)
	return nil
}

// analyzeInput dispatches to the directory or file analyzer.
func analyzeInput(input string) (*model.Model, error) {
	info, err := os.Stat(input)
	if err == nil && info.IsDir() {
		return analyze.Dir(input)
	}
	return analyze.File(input)
}

// modelPath derives the default model output path from the input path.
func modelPath(input string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(input, "/"), ".go")
	return base + ".json"
}

func countSummary(m *model.Model) string {
	return fmt.Sprintf("%d classes, %d relationships", m.Classes.Len(), len(m.Relationships))
}
