package dawg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func build(t *testing.T, words ...string) *Graph {
	t.Helper()
	b := NewBuilder()
	for _, word := range words {
		require.NoError(t, b.Add(word))
	}
	g, err := b.Finish()
	require.NoError(t, err)
	return g
}

// Every group reachable through an offset has the end-of-node flag on its
// final edge and on no other, and every offset stays inside the arena.
func TestGroupInvariants(t *testing.T) {
	g := build(t, "car", "cars", "cat", "dog", "dogs", "dot")

	require.True(t, g.nodes[MaxChars-1].EndOfNode())

	starts := map[uint32]bool{0: true}
	for _, n := range g.nodes {
		if offset := n.ChildOffset(); offset != 0 {
			require.Less(t, int(offset-1), len(g.nodes))
			starts[offset-1] = true
		}
	}

	for start := range starts {
		at := start
		for !g.nodes[at].EndOfNode() {
			at++
			require.Less(t, int(at), len(g.nodes))
		}
		if start == 0 {
			// the root group closes at its last real edge; the
			// padding beyond it is never traversed
			require.Less(t, at, uint32(MaxChars))
		}
	}
}

// Equivalent suffix subgraphs intern to the same offset.
func TestMinimality(t *testing.T) {
	g := build(t, "cars", "jars")

	c, j := g.nodes[0], g.nodes[1]
	require.Equal(t, byte('c'), c.Letter())
	require.Equal(t, byte('j'), j.Letter())
	require.NotZero(t, c.ChildOffset())
	require.Equal(t, c.ChildOffset(), j.ChildOffset())

	// root group plus one shared edge each for a, r and s
	require.Equal(t, MaxChars+3, len(g.nodes))
}

// A word that is a prefix of a longer word keeps both its end-of-word flag
// and its children.
func TestPrefixKeepsChildren(t *testing.T) {
	g := build(t, "car", "cars")

	at := g.nodes[0].ChildOffset() - 1 // a
	at = g.nodes[at].ChildOffset() - 1 // r
	r := g.nodes[at]
	require.Equal(t, byte('r'), r.Letter())
	require.True(t, r.EndOfWord())
	require.NotZero(t, r.ChildOffset())

	s := g.nodes[r.ChildOffset()-1]
	require.Equal(t, byte('s'), s.Letter())
	require.True(t, s.EndOfWord())
	require.True(t, s.EndOfNode())
	require.Zero(t, s.ChildOffset())
}

func TestFingerprintOrderSensitive(t *testing.T) {
	a := newNode('a', false).withEndOfNode()
	b := newNode('b', true).withEndOfNode()
	require.NotEqual(t, fingerprint([]Node{a, b}), fingerprint([]Node{b, a}))
}

// Interning the same group twice must return the same offset, a different
// group a different one.
func TestInternReuse(t *testing.T) {
	b := NewBuilder()

	group := []Node{newNode('x', true).withEndOfNode()}
	first, err := b.intern(group)
	require.NoError(t, err)
	require.Equal(t, uint32(MaxChars+1), first)

	again, err := b.intern(group)
	require.NoError(t, err)
	require.Equal(t, first, again)

	other, err := b.intern([]Node{newNode('y', true).withEndOfNode()})
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestPrefixOverflow(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.insert(0, []byte("ab")))
	require.ErrorIs(t, b.insert(5, []byte("abcdef")), ErrPrefixOverflow)
}
