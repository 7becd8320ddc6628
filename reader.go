package dawg

import (
	"bufio"
	"fmt"
	"io"
)

// A WordScanner yields successive words from a whitespace-separated input
// stream, together with the length of the common prefix each word shares
// with the previous one. Tokens shorter than two bytes are skipped.
// Strict ascending byte order is enforced.
type WordScanner struct {
	s    *bufio.Scanner
	prev []byte
}

// NewWordScanner returns a WordScanner reading tokens from r.
func NewWordScanner(r io.Reader) *WordScanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &WordScanner{s: s}
}

// Next returns the next word and its common-prefix length with the previous
// word. The end of input is signalled by a nil word with prefix 0.
func (ws *WordScanner) Next() (int, []byte, error) {
	for ws.s.Scan() {
		tok := ws.s.Bytes()
		if len(tok) < 2 {
			continue
		}
		word := make([]byte, len(tok))
		copy(word, tok)
		prefix, err := commonPrefix(ws.prev, word)
		if err != nil {
			return 0, nil, err
		}
		ws.prev = word
		return prefix, word, nil
	}
	if err := ws.s.Err(); err != nil {
		return 0, nil, err
	}
	return 0, nil, nil
}

// commonPrefix returns the length of the longest common prefix of prev and
// word, or ErrOutOfOrder if word does not sort strictly after prev.
func commonPrefix(prev, word []byte) (int, error) {
	p := 0
	for p < len(word) && p < len(prev) && word[p] == prev[p] {
		p++
	}
	if p == len(word) || p < len(prev) && word[p] < prev[p] {
		return 0, fmt.Errorf("%w: %q does not sort after %q", ErrOutOfOrder, word, prev)
	}
	return p, nil
}
