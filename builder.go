package dawg

import (
	"errors"
	"fmt"
	"io"
)

// A Builder constructs a minimal DAWG from words added in ascending byte
// order. It keeps a stack of in-progress edge lists, one per state on the
// spine of the most recently added word, and interns each edge list as soon
// as its state can receive no further children. Equivalent suffix subgraphs
// are therefore stored once.
type Builder struct {
	arena    []Node
	slots    []uint32
	stack    [][]Node
	depth    int
	words    int
	lastWord []byte
	finished bool
}

// NewBuilder returns an empty Builder. The first MaxChars arena entries are
// reserved for the root edge group and filled in by Finish.
func NewBuilder() *Builder {
	return &Builder{
		arena: make([]Node, MaxChars),
		slots: make([]uint32, hashTableSize),
		stack: make([][]Node, 1),
	}
}

// Words returns the number of words added so far.
func (b *Builder) Words() int { return b.words }

// Add adds a word to the graph. Words must be added in strictly ascending
// byte order; words shorter than two bytes are ignored, matching the
// input-stream contract.
func (b *Builder) Add(word string) error {
	if b.finished {
		return errors.New("dawg: builder already finished")
	}
	w := []byte(word)
	if len(w) < 2 {
		return nil
	}
	prefix, err := commonPrefix(b.lastWord, w)
	if err != nil {
		return err
	}
	b.lastWord = w
	return b.insert(prefix, w)
}

// insert extends the spine with one word. A nil word is the end-of-input
// terminator and folds all pending suffixes.
func (b *Builder) insert(prefix int, word []byte) error {
	if prefix > b.depth {
		return fmt.Errorf("%w: prefix %d at depth %d", ErrPrefixOverflow, prefix, b.depth)
	}
	if err := b.fold(prefix); err != nil {
		return err
	}
	if len(word) == 0 {
		if b.depth != 0 {
			return ErrDanglingEdges
		}
		return nil
	}
	for b.depth < len(word) {
		top := &b.stack[len(b.stack)-1]
		*top = append(*top, newNode(word[b.depth], b.depth+1 == len(word)))
		b.stack = append(b.stack, nil)
		b.depth++
	}
	b.words++
	return nil
}

// fold commits completed suffix edge lists until the spine is downTo deep.
// Each popped list is interned and its offset recorded on the parent edge.
func (b *Builder) fold(downTo int) error {
	for b.depth > downTo {
		ready := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.depth--
		if len(ready) == 0 {
			continue
		}
		ready[len(ready)-1] = ready[len(ready)-1].withEndOfNode()
		offset, err := b.intern(ready)
		if err != nil {
			return err
		}
		parent := b.stack[len(b.stack)-1]
		parent[len(parent)-1] = parent[len(parent)-1].withOffset(offset)
	}
	return nil
}

// Finish folds any pending suffixes, installs the padded root edge group
// and returns the completed graph. An empty lexicon yields an empty graph
// with no root group at all.
func (b *Builder) Finish() (*Graph, error) {
	if b.finished {
		return nil, errors.New("dawg: builder already finished")
	}
	if err := b.fold(0); err != nil {
		return nil, err
	}
	b.finished = true

	root := b.stack[0]
	if len(root) == 0 {
		return &Graph{}, nil
	}

	// The root group always occupies the first MaxChars arena slots,
	// right-padded with zero nodes. The final slot closes the group.
	root[len(root)-1] = root[len(root)-1].withEndOfNode()
	copy(b.arena[:MaxChars], root)
	b.arena[MaxChars-1] = b.arena[MaxChars-1].withEndOfNode()

	return &Graph{nodes: b.arena}, nil
}

// Compile reads a sorted word list from r and builds its minimal DAWG.
func Compile(r io.Reader) (*Graph, error) {
	b := NewBuilder()
	ws := NewWordScanner(r)
	for {
		prefix, word, err := ws.Next()
		if err != nil {
			return nil, err
		}
		if err := b.insert(prefix, word); err != nil {
			return nil, err
		}
		if len(word) == 0 {
			break
		}
	}
	return b.Finish()
}
