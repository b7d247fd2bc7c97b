package flashkw

import "github.com/tanagra-dev/flashkw/bulkio"

// IOError, ParseError and TypeError are produced by the bulk loaders in
// package bulkio, the only place this module touches the filesystem or an
// external serialization format; they are re-exported here so callers of
// Engine never need to import bulkio directly to handle a load failure.
type (
	IOError    = bulkio.IOError
	ParseError = bulkio.ParseError
	TypeError  = bulkio.TypeError
)

// KeyError reports a miss on Engine's indexing operators, Get and Delete.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return "flashkw: key not found: " + e.Key
}

// errNotImplemented is the sentinel Iterate always returns: this engine
// does not support generic iteration, only the bulk AllEntries snapshot.
type errNotImplemented struct{}

func (errNotImplemented) Error() string {
	return "flashkw: generic iteration is not implemented; use AllEntries"
}

// ErrNotImplemented is returned by Engine.Iterate.
var ErrNotImplemented error = errNotImplemented{}
