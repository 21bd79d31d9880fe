package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// encodeOpts holds the command-line flags shared by encode and the
// per-format shortcuts.
type encodeOpts struct {
	output    string
	zeroBased bool
	strict    bool
}

func (o *encodeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&o.zeroBased, "zero-based", "0", false, "vertex ids start at 0")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "reject out-of-order, out-of-range and one-sided edges")
}

// encodeCommand creates the encode command. The format is the optional
// first argument; without it the configured format is used.
func (c *CLI) encodeCommand() *cobra.Command {
	var opts encodeOpts

	cmd := &cobra.Command{
		Use:   "encode [format] [file]",
		Short: "Encode adjacency lists to a graph code stream",
		Long: `Encode reads adjacency lists, one graph per blank-line separated block,
and writes them as a binary graph code stream.

  adjcode encode multi graphs.txt -o graphs.mc
  adjcode encode planar < graphs.txt > graphs.pc
  cat graphs.txt | adjcode encode`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.Config.Format
			if len(args) > 0 {
				if _, err := graphcode.ParseFormat(args[0]); err == nil {
					name, args = args[0], args[1:]
				}
			}
			if len(args) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "unexpected argument %q", args[1])
			}
			f, err := graphcode.ParseFormat(name)
			if err != nil {
				return err
			}
			return c.runEncode(cmd, f, firstArg(args), &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// formatCommand creates a shortcut command named after f, mirroring the
// classic one-binary-per-format tools.
func (c *CLI) formatCommand(f graphcode.Format) *cobra.Command {
	var opts encodeOpts

	cmd := &cobra.Command{
		Use:   f.String() + " [file]",
		Short: fmt.Sprintf("Encode adjacency lists to %s", f.Magic()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncode(cmd, f, firstArg(args), &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) runEncode(cmd *cobra.Command, f graphcode.Format, input string, opts *encodeOpts) error {
	ctx := cmd.Context()
	po := pipeline.EncodeOptions{
		Format:    f,
		ZeroBased: boolSetting(cmd, "zero-based", opts.zeroBased, c.Config.ZeroBased),
		Strict:    boolSetting(cmd, "strict", opts.strict, c.Config.Strict),
	}

	stats, err := c.convert(ctx, input, opts.output, func(ctx context.Context, r *pipeline.Runner, in io.Reader, out io.Writer) (pipeline.Stats, error) {
		return r.Encode(ctx, in, out, po)
	})
	if err != nil {
		return err
	}
	if isFile(opts.output) {
		printSuccess("Encoded %s as %s", inputName(input), f)
		printFile(opts.output)
		printStats(stats.Graphs, stats.Vertices, stats.Edges, stats.Wide)
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
