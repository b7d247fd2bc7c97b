package trie

// Payload is the value attached to a terminal trie node: the "clean name"
// of a registered keyword. It is semantically a tagged variant — either a
// single opaque string token or an ordered sequence of tokens that all
// share the same match span when extracted.
//
// The zero Payload is not valid; construct one with NewPayload or
// NewMultiPayload.
type Payload struct {
	values []string
}

// NewPayload wraps a single clean-name string.
func NewPayload(cleanName string) Payload {
	return Payload{values: []string{cleanName}}
}

// NewMultiPayload wraps an ordered sequence of clean names. The scanner
// emits one match per element, in order, all sharing the same span.
func NewMultiPayload(cleanNames []string) Payload {
	values := make([]string, len(cleanNames))
	copy(values, cleanNames)
	return Payload{values: values}
}

// IsMulti reports whether the payload carries more than one clean name.
func (p Payload) IsMulti() bool {
	return len(p.values) > 1
}

// Values returns the ordered clean names carried by the payload.
func (p Payload) Values() []string {
	out := make([]string, len(p.values))
	copy(out, p.values)
	return out
}

// First returns the first (or only) clean name — the canonical choice when
// a single string representation is required, e.g. by the replacer.
func (p Payload) First() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0]
}
