package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file, or base path when several graphs are drawn
	format    string  // dot, svg, png or pdf
	code      string  // forced stream format, empty detects from the header
	engine    string  // Graphviz layout engine
	graph     int     // 1-based graph to draw, 0 draws all
	scale     float64 // PNG scale factor
	zeroBased bool    // label vertices from 0
	classic   bool    // n-1 lists per multi/signed record
}

// renderCommand creates the render command. Each graph of the stream
// becomes one node-link diagram.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		engine: pipeline.DefaultEngine,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the graphs of a graph code stream",
		Long: `Render draws every graph of a multi_code, planar_code or signed_code stream
with Graphviz. A single graph goes to --output; several graphs go to
<base>-1.svg, <base>-2.svg and so on, where the base is taken from --output
or the input file name. Signed edges are labelled and negative ones dashed.

  adjcode render graphs.mc                 # graphs-1.svg, graphs-2.svg, ...
  adjcode render graphs.mc --graph 3 -o g3.png
  adjcode render -f dot < graphs.mc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.zeroBased = boolSetting(cmd, "zero-based", opts.zeroBased, c.Config.ZeroBased)
			if opts.format == "" {
				opts.format = formatFromPath(opts.output)
			}
			return c.runRender(cmd.Context(), firstArg(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single graph) or base path (several graphs)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot, png, pdf")
	cmd.Flags().StringVar(&opts.code, "code", "", "stream format: multi, planar or signed (default: from header)")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "Graphviz layout: neato, dot, circo, fdp")
	cmd.Flags().IntVar(&opts.graph, "graph", 0, "draw only this graph (1-based)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVarP(&opts.zeroBased, "zero-based", "0", false, "label vertices from 0")
	cmd.Flags().BoolVar(&opts.classic, "classic", false, "read multi/signed records without the last vertex's list")

	return cmd
}

// formatFromPath infers the output format from a file extension, falling
// back to SVG.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if pipeline.ValidRenderFormats[ext] {
		return ext
	}
	return pipeline.FormatSVG
}

// basePath derives the base output path for numbered files. Without an
// output it strips the extension from input; a known format extension is
// stripped from output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidRenderFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	po := pipeline.RenderOptions{
		Output:    opts.format,
		Engine:    opts.engine,
		Scale:     opts.scale,
		ZeroBased: opts.zeroBased,
		Classic:   opts.classic,
		Graph:     opts.graph,
	}
	if opts.code != "" {
		f, err := graphcode.ParseFormat(opts.code)
		if err != nil {
			return err
		}
		po.Format = f
	}
	if err := po.ValidateAndSetDefaults(); err != nil {
		return err
	}

	in, err := c.openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	runner := c.newRunner(ctx)
	defer runner.Close()

	p := newProgress(logger)
	toStdout := !isFile(opts.output) && !isFile(input)
	var written []string
	drawn := 0

	emit := func(a pipeline.Artifact) error {
		var path string
		switch {
		case toStdout:
		case opts.graph > 0 && isFile(opts.output):
			path = opts.output
		default:
			path = fmt.Sprintf("%s-%d.%s", basePath(opts.output, input), a.Index+1, po.Output)
		}
		if err := c.writeArtifact(path, a.Data); err != nil {
			return err
		}
		if path != "" {
			logger.Debugf("Generated %s (%d bytes)", path, len(a.Data))
			written = append(written, path)
		}
		drawn++
		return nil
	}

	stats, err := runner.Render(ctx, in, po, emit)
	if err != nil {
		return err
	}
	if opts.graph > 0 && drawn == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s has %d graphs, cannot draw graph %d", inputName(input), stats.Graphs, opts.graph)
	}

	p.done("Rendered " + inputName(input))
	if len(written) > 0 {
		printSuccess("Rendered %s", inputName(input))
		for _, path := range written {
			printFile(path)
		}
	}
	return nil
}

// writeArtifact writes data to path, or to the CLI's output stream when
// path is empty.
func (c *CLI) writeArtifact(path string, data []byte) error {
	if path == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
