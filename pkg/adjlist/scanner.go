package adjlist

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single adjacency line. Vertices of very large graphs
// can have long lists, so the bufio default of 64 KiB is raised.
const maxLineSize = 16 << 20

// Block is the raw text of one graph.
type Block struct {
	Index int      // 0-based position of the block in the stream
	Line  int      // 1-based input line of Lines[0]
	Lines []string // whitespace-trimmed, non-blank lines
}

// Scanner splits an input stream into blocks separated by blank lines.
// A final block without a trailing blank line is still returned.
type Scanner struct {
	sc    *bufio.Scanner
	line  int
	count int
	block Block
	err   error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{sc: sc}
}

// Scan advances to the next block, reporting whether there is one.
func (s *Scanner) Scan() bool {
	var b Block
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			if len(b.Lines) > 0 {
				return s.emit(b)
			}
			continue
		}
		if len(b.Lines) == 0 {
			b.Line = s.line
		}
		b.Lines = append(b.Lines, text)
	}
	s.err = s.sc.Err()
	if s.err == nil && len(b.Lines) > 0 {
		return s.emit(b)
	}
	return false
}

func (s *Scanner) emit(b Block) bool {
	b.Index = s.count
	s.count++
	s.block = b
	return true
}

// Block returns the block found by the last successful Scan.
func (s *Scanner) Block() Block { return s.block }

// Err returns the first read error, if any.
func (s *Scanner) Err() error { return s.err }
