package dawg

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

/* FILE FORMAT
- 4 bytes: uint32 little-endian - number of edge records
- for each edge record:
	- 4 bytes: uint32 little-endian, packed as described on Node

The first MaxChars records are the root edge group, one slot per possible
first byte, right-padded with zeroes; the final slot always carries the
end-of-node flag. An empty lexicon is written as a bare zero count with no
root group. Little-endian is fixed regardless of host byte order.
*/

// Write writes the graph to w. Returns the number of bytes written.
func (g *Graph) Write(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(len(g.nodes)))
	if _, err := bw.Write(buf[:]); err != nil {
		return 0, err
	}
	for _, n := range g.nodes {
		binary.LittleEndian.PutUint32(buf[:], uint32(n))
		if _, err := bw.Write(buf[:]); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return int64(4 * (len(g.nodes) + 1)), nil
}

// Save writes the graph to disk. Returns the number of bytes written.
func (g *Graph) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return g.Write(f)
}

// Read loads a graph from the given io.ReaderAt. size must be the total
// byte length available; it is checked against the edge count in the
// header.
func Read(r io.ReaderAt, size int64) (*Graph, error) {
	if size < 4 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header", ErrCorruptFile, size)
	}
	var hdr [4]byte
	if _, err := r.ReadAt(hdr[:], 0); err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint32(hdr[:])
	if size != int64(count+1)*4 {
		return nil, fmt.Errorf("%w: header claims %d edges, file holds %d bytes",
			ErrCorruptFile, count, size)
	}

	nodes := make([]Node, count)
	if count > 0 {
		data := make([]byte, 4*count)
		if _, err := r.ReadAt(data, 4); err != nil {
			return nil, err
		}
		for i := range nodes {
			nodes[i] = Node(binary.LittleEndian.Uint32(data[4*i:]))
		}
	}
	return &Graph{nodes: nodes}, nil
}

// Load reads a graph from a file. The file is memory-mapped while the
// edge records are decoded and unmapped before returning.
func Load(filename string) (*Graph, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, int64(f.Len()))
}
