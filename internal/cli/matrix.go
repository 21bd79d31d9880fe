package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// matrixCommand creates the matrix command, which converts 0/1 adjacency
// matrices into adjacency lists or straight into a graph code stream.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		output    string
		encode    string
		zeroBased bool
	)

	cmd := &cobra.Command{
		Use:   "matrix [file]",
		Short: "Convert adjacency matrices to adjacency lists",
		Long: `Matrix reads square 0/1 adjacency matrices, one row per line with graphs
separated by blank lines, and writes them as adjacency lists. With --encode
the graphs are written as a multi_code or planar_code stream instead.

  adjcode matrix grid.txt
  adjcode matrix --encode multi grid.txt -o grid.mc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.MatrixOptions{
				ZeroBased: boolSetting(cmd, "zero-based", zeroBased, c.Config.ZeroBased),
			}
			if encode != "" {
				f, err := graphcode.ParseFormat(encode)
				if err != nil {
					return err
				}
				opts.Encode = f
			}

			input := firstArg(args)
			stats, err := c.convert(cmd.Context(), input, output, func(ctx context.Context, r *pipeline.Runner, in io.Reader, out io.Writer) (pipeline.Stats, error) {
				return r.Matrix(ctx, in, out, opts)
			})
			if err != nil {
				return err
			}
			if isFile(output) {
				printSuccess("Converted %s", inputName(input))
				printFile(output)
				printStats(stats.Graphs, stats.Vertices, stats.Edges, stats.Wide)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&encode, "encode", "", "write a multi or planar stream instead of text")
	cmd.Flags().BoolVarP(&zeroBased, "zero-based", "0", false, "write vertex ids starting at 0")

	return cmd
}
