/*
Package dawg compiles sorted word lists into Directed Acyclic Word Graphs
and decompiles them back again.

* Construction is online: each word extends a stack of in-progress edge
lists, and every completed suffix is interned through a fixed-size hash
table so that equivalent subgraphs are stored exactly once. The result is
the minimal automaton, built in a single pass over the input.

* The storage format is a flat arena of 32-bit packed edges behind a
4-byte count header, byte-exact compatible with the original compiler
that defined it. The first 256 edges are the root group, one slot per
possible first byte.

* Traversal is iterative rather than recursive, so arbitrarily deep
dictionaries cannot overflow the stack, and every followed offset is
bounds-checked.

To compile, feed a sorted word list to Compile, or add words one at a time
with NewBuilder/Add/Finish, then Save the resulting Graph. Load reads a
graph back from disk; Dump writes its word list, and Enumerate walks the
accepted words for programmatic use.
*/
package dawg
