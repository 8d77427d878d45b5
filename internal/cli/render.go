package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output string // output file path
}

// RenderResult holds the rendered query for JSON output.
type RenderResult struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <query-file>",
		Short: "Render a query document to SPARQL text",
		Long: `Render a declarative query document (YAML or CUE) to SPARQL query text.

The document describes prefixes, projection, graph patterns and solution
modifiers; the output is the assembled SPARQL 1.1 query.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Errors are reported through our own output path
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := LoadDocument(path)
	if err != nil {
		return outputLoadError(formatter, err, ExitCommandError)
	}
	formatter.VerboseLog("Loaded %s query document from %s", doc.Type, path)

	text, err := BuildQuery(doc)
	if err != nil {
		return outputLoadError(formatter, err, ExitFailure)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(text+"\n"), 0644); err != nil {
			code := ErrCodeWriteFailed
			_ = formatter.Error(code, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("%s: writing output file", code), err)
		}
		formatter.VerboseLog("Wrote query to %s", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{Type: doc.Type, Query: text})
	}
	fmt.Fprintln(formatter.Writer, text)
	return nil
}

// outputLoadError reports a load/build error and converts it to an
// ExitError with the given exit code.
func outputLoadError(formatter *OutputFormatter, err error, exitCode int) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(exitCode, loadErr.Error(), nil)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(exitCode, err.Error(), nil)
}
