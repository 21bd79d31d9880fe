package graphcode

import (
	"strings"

	"github.com/matzehuels/adjcode/pkg/errors"
)

// Format identifies one of the graph codes.
type Format int

// Supported formats.
const (
	Multi Format = iota + 1
	Planar
	Signed
)

// Magic strings written at the start of every stream.
const (
	MagicMulti  = ">>multi_code<<"
	MagicPlanar = ">>planar_code<<"
	MagicSigned = ">>signed_code<<"
)

// Formats lists all supported formats in display order.
var Formats = []Format{Multi, Planar, Signed}

// String returns the short format name used on the command line.
func (f Format) String() string {
	switch f {
	case Multi:
		return "multi"
	case Planar:
		return "planar"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// Magic returns the stream header for f.
func (f Format) Magic() string {
	switch f {
	case Multi:
		return MagicMulti
	case Planar:
		return MagicPlanar
	case Signed:
		return MagicSigned
	default:
		return ""
	}
}

// Signed reports whether edges of f carry a sign.
func (f Format) Signed() bool { return f == Signed }

// Dedup reports whether f stores each undirected edge once.
func (f Format) Dedup() bool { return f == Multi || f == Signed }

// ParseFormat maps a name such as "multi", "multicode" or "planar_code" to
// its Format.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, "code"), "_")
	for _, f := range Formats {
		if n == f.String() {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (available: multi, planar, signed)", name)
}
