package adjlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/adjcode/pkg/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		opts Options
		want Vertex
	}{
		{
			name: "plain",
			line: "1: 2,3",
			want: Vertex{ID: 1, Edges: []Edge{{To: 2}, {To: 3}}},
		},
		{
			name: "spaces everywhere",
			line: " 4 :  5 , 6 ",
			want: Vertex{ID: 4, Edges: []Edge{{To: 5}, {To: 6}}},
		},
		{
			name: "isolated vertex",
			line: "7:",
			want: Vertex{ID: 7},
		},
		{
			name: "isolated vertex with blank tail",
			line: "7:   ",
			want: Vertex{ID: 7},
		},
		{
			name: "zero based",
			line: "0: 1,2",
			opts: Options{ZeroBased: true},
			want: Vertex{ID: 1, Edges: []Edge{{To: 2}, {To: 3}}},
		},
		{
			name: "signed",
			line: "1: 2+, 3-",
			opts: Options{Signed: true},
			want: Vertex{ID: 1, Edges: []Edge{{To: 2, Sign: Positive}, {To: 3, Sign: Negative}}},
		},
		{
			name: "signed zero based",
			line: "0: 1 -",
			opts: Options{Signed: true, ZeroBased: true},
			want: Vertex{ID: 1, Edges: []Edge{{To: 2, Sign: Negative}}},
		},
		{
			name: "repeated neighbour kept",
			line: "1: 2,2",
			want: Vertex{ID: 1, Edges: []Edge{{To: 2}, {To: 2}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		opts Options
	}{
		{"no colon", "1 2,3", Options{}},
		{"empty id", ": 2", Options{}},
		{"non numeric id", "a: 2", Options{}},
		{"negative id", "-1: 2", Options{}},
		{"plus sign id", "+1: 2", Options{}},
		{"non numeric neighbour", "1: 2,x", Options{}},
		{"empty token", "1: 2,,3", Options{}},
		{"trailing comma", "1: 2,", Options{}},
		{"missing sign", "1: 2+,3", Options{Signed: true}},
		{"sign only", "1: +", Options{Signed: true}},
		{"unsigned input with sign", "1: 2+", Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeParse), "code = %v", errors.GetCode(err))
		})
	}
}

func TestParse(t *testing.T) {
	g, err := ParseLines([]string{"1: 2,3", "2: 1,3", "3: 1,2"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []Edge{{To: 1}, {To: 3}}, g.Neighbours(2))
}

func TestParseZeroBasedMatchesOneBased(t *testing.T) {
	one, err := ParseLines([]string{"1: 2,3", "2: 1,3", "3: 1,2"}, Options{})
	require.NoError(t, err)
	zero, err := ParseLines([]string{"0: 1,2", "1: 0,2", "2: 0,1"}, Options{ZeroBased: true})
	require.NoError(t, err)
	assert.Equal(t, one, zero)
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(Block{Line: 10, Lines: []string{"1: 2", "2 1"}}, Options{})
	require.Error(t, err)

	var pe *errors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 11, pe.Line)
	assert.Equal(t, "2 1", pe.Token)
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		opts  Options
		code  errors.Code
	}{
		{"out of order", []string{"1: 3", "3: 1", "2:"}, Options{}, errors.ErrCodeVertexOrder},
		{"unknown neighbour", []string{"1: 4", "2:"}, Options{}, errors.ErrCodeInvalidVertex},
		{"sentinel neighbour", []string{"1: 0", "2:"}, Options{}, errors.ErrCodeInvalidVertex},
		{"one sided edge", []string{"1: 2", "2:"}, Options{}, errors.ErrCodeAsymmetric},
		{"multiplicity mismatch", []string{"1: 2,2", "2: 1"}, Options{}, errors.ErrCodeAsymmetric},
		{"sign mismatch", []string{"1: 2+", "2: 1-"}, Options{Signed: true}, errors.ErrCodeAsymmetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Strict = true
			_, err := ParseLines(tt.lines, opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))

			opts.Strict = false
			_, err = ParseLines(tt.lines, opts)
			assert.NoError(t, err, "lenient mode should accept the graph")
		})
	}
}

func TestValidateAcceptsLoopsAndMultiEdges(t *testing.T) {
	g, err := ParseLines([]string{"1: 1,1,2,2", "2: 1,1"}, Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order())
}
