package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// decodeCommand creates the decode command, the inverse of encode.
func (c *CLI) decodeCommand() *cobra.Command {
	var (
		output    string
		format    string
		zeroBased bool
		classic   bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a graph code stream to adjacency lists",
		Long: `Decode reads a multi_code, planar_code or signed_code stream and writes
one adjacency list block per graph. The format is taken from the stream
header unless --format is given. Streams from the classic multi_code and
signed_code generators omit the last vertex's list; read them with --classic.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.DecodeOptions{
				ZeroBased: boolSetting(cmd, "zero-based", zeroBased, c.Config.ZeroBased),
				Classic:   classic,
			}
			if format != "" {
				f, err := graphcode.ParseFormat(format)
				if err != nil {
					return err
				}
				opts.Format = f
			}

			input := firstArg(args)
			stats, err := c.convert(cmd.Context(), input, output, func(ctx context.Context, r *pipeline.Runner, in io.Reader, out io.Writer) (pipeline.Stats, error) {
				return r.Decode(ctx, in, out, opts)
			})
			if err != nil {
				return err
			}
			if isFile(output) {
				printSuccess("Decoded %s", inputName(input))
				printFile(output)
				printStats(stats.Graphs, stats.Vertices, stats.Edges, stats.Wide)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "expected format: multi, planar or signed (default: from header)")
	cmd.Flags().BoolVarP(&zeroBased, "zero-based", "0", false, "write vertex ids starting at 0")
	cmd.Flags().BoolVar(&classic, "classic", false, "read multi/signed records without the last vertex's list")

	return cmd
}
