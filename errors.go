package dawg

import "errors"

// Errors reported while compiling or reading a graph. All of them are fatal
// to the operation that raised them except ErrCorruptGraph, which aborts a
// dump traversal but leaves the words already written intact.
var (
	// ErrOutOfOrder means an input word did not sort strictly after the
	// previous one. Words must be added in ascending byte order.
	ErrOutOfOrder = errors.New("dawg: words not in ascending order")

	// ErrPrefixOverflow means a common-prefix length exceeded the current
	// spine depth. Unreachable for input that passed the order check.
	ErrPrefixOverflow = errors.New("dawg: common prefix exceeds spine depth")

	// ErrDanglingEdges means input ended while suffix edges were still
	// pending on the builder stack.
	ErrDanglingEdges = errors.New("dawg: input ended with unfinished edges")

	// ErrHashTableFull means the interner table is saturated; the lexicon
	// has more unique states than the table supports.
	ErrHashTableFull = errors.New("dawg: hash table full")

	// ErrTooManyEdges means the graph outgrew the 21-bit offset space.
	ErrTooManyEdges = errors.New("dawg: too many edges")

	// ErrCorruptFile means the file length disagrees with the edge count
	// in the header.
	ErrCorruptFile = errors.New("dawg: corrupt file")

	// ErrCorruptGraph means an edge offset points outside the arena, or an
	// edge group is not terminated.
	ErrCorruptGraph = errors.New("dawg: corrupt graph")
)
