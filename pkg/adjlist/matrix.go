package adjlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/adjcode/pkg/errors"
)

// ReadMatrices reads adjacency matrices from r and calls fn with each one as
// a graph. Rows are whitespace separated entries; a row may be wrapped in
// brackets and then span several lines until the closing ']'. Matrices are
// separated by blank lines. Nested brackets as printed by numpy
// ("[[0 1]\n [1 0]]") are accepted. An entry k > 0 at (i, j) lists j as a neighbour
// of i k times.
func ReadMatrices(r io.Reader, fn func(*Graph) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		rows    [][]string
		pending string
		start   int
		line    int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		g, err := matrixGraph(rows)
		if err != nil {
			return errors.AtLine(err, start, "")
		}
		rows = rows[:0]
		return fn(g)
	}

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if pending != "" {
				continue
			}
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		if len(rows) == 0 && pending == "" {
			start = line
		}
		if pending == "" && !strings.HasPrefix(text, "[") {
			rows = append(rows, strings.Fields(text))
			continue
		}
		pending += " " + text
		if strings.Contains(pending, "]") {
			rows = append(rows, strings.Fields(strings.Trim(strings.TrimSpace(pending), "[]")))
			pending = ""
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if pending != "" {
		return errors.AtLine(errors.New(errors.ErrCodeParse, "unterminated matrix row"), line, pending)
	}
	return flush()
}

func matrixGraph(rows [][]string) (*Graph, error) {
	n := len(rows)
	g := New(n, false)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row %d has %d entries, want %d", i+1, len(row), n)
		}
		for j, cell := range row {
			k, err := parseID(cell)
			if err != nil {
				return nil, err
			}
			for ; k > 0; k-- {
				g.AddArc(i+1, j+1, SignNone)
			}
		}
	}
	return g, nil
}
