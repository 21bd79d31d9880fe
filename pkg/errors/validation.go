package errors

// ValidateWidth checks that value can be stored in a record field whose
// largest representable value is max. Zero is always rejected because it is
// the end-of-list sentinel in every graph code.
//
// what names the field in the message (e.g. "vertex count", "neighbour").
func ValidateWidth(value, max int, what string) error {
	if value == 0 {
		return New(ErrCodeWidthOverflow, "%s 0 collides with the list sentinel", what)
	}
	if value < 0 || value > max {
		return New(ErrCodeWidthOverflow, "%s %d out of range 1..%d", what, value, max)
	}
	return nil
}

// ValidateVertex checks that v names one of the n vertices of a graph.
func ValidateVertex(v, n int) error {
	if v < 1 || v > n {
		return New(ErrCodeInvalidVertex, "vertex %d out of range 1..%d", v, n)
	}
	return nil
}
