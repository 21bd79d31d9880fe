package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// openInput opens path for reading; "" and "-" mean the CLI's input stream.
func (c *CLI) openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(c.In), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}

// output is a buffered destination. Close flushes whatever complete
// records were written, even after a failed conversion.
type output struct {
	*bufio.Writer
	file *os.File
}

// openOutput creates path for writing; "" and "-" mean the CLI's output
// stream.
func (c *CLI) openOutput(path string) (*output, error) {
	if path == "" || path == "-" {
		return &output{Writer: bufio.NewWriter(c.Out)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	return &output{Writer: bufio.NewWriter(f), file: f}, nil
}

func (o *output) Close() error {
	err := o.Flush()
	if o.file != nil {
		if cerr := o.file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

// isFile reports whether path names a file rather than a standard stream.
func isFile(path string) bool {
	return path != "" && path != "-"
}

// inputName is how status lines refer to an input.
func inputName(path string) string {
	if isFile(path) {
		return path
	}
	return "stdin"
}

// conversion runs one pipeline operation between already opened streams.
type conversion func(ctx context.Context, r *pipeline.Runner, in io.Reader, out io.Writer) (pipeline.Stats, error)

// convert wires input and output paths to a fresh runner and runs fn.
// Output written before a failure is still flushed.
func (c *CLI) convert(ctx context.Context, input, outputPath string, fn conversion) (pipeline.Stats, error) {
	in, err := c.openInput(input)
	if err != nil {
		return pipeline.Stats{}, err
	}
	defer in.Close()

	out, err := c.openOutput(outputPath)
	if err != nil {
		return pipeline.Stats{}, err
	}

	runner := c.newRunner(ctx)
	defer runner.Close()

	stats, err := fn(ctx, runner, in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return stats, err
}
