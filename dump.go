package dawg

import (
	"bufio"
	"fmt"
	"io"
)

// A Graph is a compiled DAWG: a flat arena of packed edges. The first
// MaxChars entries are the root edge group; all other groups follow in the
// order they were committed. A Graph is immutable once built or loaded.
type Graph struct {
	nodes []Node
}

// NumEdges returns the number of edges in the graph, including the padded
// root group.
func (g *Graph) NumEdges() int { return len(g.nodes) }

// Enumerate walks the graph depth-first and calls fn once for every
// accepted word, in ascending byte order. The word slice is reused between
// calls. fn returns false to stop the walk early.
//
// The traversal is explicitly iterative so that deep dictionaries cannot
// overflow the goroutine stack. Every followed offset is range-checked;
// an out-of-bounds offset or an unterminated edge group aborts the walk
// with ErrCorruptGraph.
func (g *Graph) Enumerate(fn func(word []byte) bool) error {
	if len(g.nodes) == 0 {
		return nil
	}

	// stack holds the arena index of the current edge at each depth;
	// word holds the corresponding letters.
	stack := make([]uint32, 1, 32)
	word := make([]byte, 1, 32)

	for len(stack) > 0 {
		at := stack[len(stack)-1]
		n := g.nodes[at]
		word[len(word)-1] = n.Letter()

		if n.EndOfWord() {
			if !fn(word) {
				return nil
			}
		}

		if offset := n.ChildOffset(); offset != 0 {
			child := offset - 1
			if int(child) >= len(g.nodes) {
				return fmt.Errorf("%w: offset %d at edge %d outside arena of %d",
					ErrCorruptGraph, offset, at, len(g.nodes))
			}
			stack = append(stack, child)
			word = append(word, 0)
			continue
		}

		// Advance to the next sibling, popping levels whose group we
		// just stepped past the end of.
		for len(stack) > 0 {
			at := stack[len(stack)-1]
			if g.nodes[at].EndOfNode() {
				stack = stack[:len(stack)-1]
				word = word[:len(word)-1]
				continue
			}
			if int(at)+1 >= len(g.nodes) {
				return fmt.Errorf("%w: unterminated edge group at %d", ErrCorruptGraph, at)
			}
			stack[len(stack)-1] = at + 1
			break
		}
	}
	return nil
}

// Dump writes the accepted word list to w, one word per line, in the order
// the words were originally added. Words written before a corruption was
// detected remain written.
func (g *Graph) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	err := g.Enumerate(func(word []byte) bool {
		bw.Write(word)
		bw.WriteByte('\n')
		return true
	})
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// WordCount traverses the graph and returns the number of accepted words.
func (g *Graph) WordCount() (int, error) {
	count := 0
	err := g.Enumerate(func([]byte) bool {
		count++
		return true
	})
	return count, err
}

// RootFanout returns the number of populated root edges, or 0 for an
// empty graph.
func (g *Graph) RootFanout() int {
	fanout := 0
	for _, n := range g.nodes[:min(len(g.nodes), MaxChars)] {
		if n.ChildOffset() != 0 || n.EndOfWord() {
			fanout++
		}
	}
	return fanout
}

// PrintTo writes a per-edge listing of the graph to w, for debugging.
func (g *Graph) PrintTo(w io.Writer) {
	for i, n := range g.nodes {
		word, last := '.', '.'
		if n.EndOfWord() {
			word = 'w'
		}
		if n.EndOfNode() {
			last = 'n'
		}
		letter := rune(n.Letter())
		if letter < ' ' || letter > '~' {
			letter = '?'
		}
		fmt.Fprintf(w, "[%06x] '%c' %c%c goto %06x\n", i, letter, word, last, n.ChildOffset())
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
