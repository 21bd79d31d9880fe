package cache

// ScopedKeyer wraps a Keyer with a prefix, giving servers that share one
// redis instance separate namespaces.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "adjcode:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// EncodeKey generates a prefixed key for encoded streams.
func (k *ScopedKeyer) EncodeKey(body []byte, opts EncodeKeyOpts) string {
	return k.prefix + k.inner.EncodeKey(body, opts)
}

// DecodeKey generates a prefixed key for decoded text.
func (k *ScopedKeyer) DecodeKey(body []byte, opts DecodeKeyOpts) string {
	return k.prefix + k.inner.DecodeKey(body, opts)
}
