package xof

// SeedTree is a binary GGM tree expanding one root seed into `parties`
// leaf seeds. Grounded on DECS/merkle.go's BuildMerkleTree: the same
// flat-layers-of-fixed-width-hashes structure, but run top-down (root to
// leaves via domain-separated left/right children) instead of bottom-up
// (leaves to root). parties must be a power of two. Per spec.md §4.D's
// signature blob layout, openings reveal leaf seeds directly (flat, not a
// compact co-path), so only forward expansion is needed here — a verifier
// who receives a revealed leaf re-derives that party's state the same way
// the signer did, without ever walking the tree itself.
type SeedTree struct {
	seedLen int
	layers  [][][]byte // layers[0] = [root], layers[depth] = leaves
}

// BuildSeedTree expands root into a full binary tree with `parties` leaves,
// each seedLen bytes wide.
func BuildSeedTree(root []byte, parties, seedLen int) *SeedTree {
	depth := 0
	for (1 << uint(depth)) < parties {
		depth++
	}
	layers := make([][][]byte, depth+1)
	layers[0] = [][]byte{append([]byte(nil), root...)}
	for lvl := 0; lvl < depth; lvl++ {
		prev := layers[lvl]
		next := make([][]byte, 0, len(prev)*2)
		for _, seed := range prev {
			left := Expand(TagSeedTree, seedLen, seed, []byte{0x00})
			right := Expand(TagSeedTree, seedLen, seed, []byte{0x01})
			next = append(next, left, right)
		}
		layers[lvl+1] = next
	}
	return &SeedTree{seedLen: seedLen, layers: layers}
}

// Leaves returns the `parties` leaf seeds in order.
func (t *SeedTree) Leaves() [][]byte {
	return t.layers[len(t.layers)-1]
}
