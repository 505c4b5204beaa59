package xof

import (
	"bytes"
	"testing"
)

func TestExpandDeterministic(t *testing.T) {
	a := Expand(TagMatrixExpand, 32, []byte("seed"))
	b := Expand(TagMatrixExpand, 32, []byte("seed"))
	if !bytes.Equal(a, b) {
		t.Fatalf("Expand not deterministic")
	}
}

func TestExpandDomainSeparation(t *testing.T) {
	a := Expand(TagMatrixExpand, 32, []byte("seed"))
	b := Expand(TagSecretExpand, 32, []byte("seed"))
	if bytes.Equal(a, b) {
		t.Fatalf("different tags collided")
	}
}

func TestCommitDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, 32)
	a := Commit(salt, 3, 7, []byte("payload"), 32)
	b := Commit(salt, 3, 7, []byte("payload"), 32)
	if !bytes.Equal(a, b) {
		t.Fatalf("Commit not deterministic")
	}
	c := Commit(salt, 3, 8, []byte("payload"), 32)
	if bytes.Equal(a, c) {
		t.Fatalf("Commit ignored party index")
	}
}

func TestFieldVectorRange(t *testing.T) {
	vals := FieldVector(TagChallenge1, 1000, []byte("h1"))
	for _, v := range vals {
		if v > 15 {
			t.Fatalf("FieldVector produced out-of-range nibble: %d", v)
		}
	}
}

func TestSubsetIndexRange(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		idx := SubsetIndex(32, TagChallenge2, []byte{byte(trial)})
		if idx < 0 || idx >= 32 {
			t.Fatalf("SubsetIndex out of range: %d", idx)
		}
	}
}

func TestSeedTreeLeafCount(t *testing.T) {
	root := bytes.Repeat([]byte{0x01}, 16)
	tree := BuildSeedTree(root, 32, 16)
	leaves := tree.Leaves()
	if len(leaves) != 32 {
		t.Fatalf("expected 32 leaves, got %d", len(leaves))
	}
	seen := map[string]bool{}
	for _, l := range leaves {
		if len(l) != 16 {
			t.Fatalf("leaf width %d, want 16", len(l))
		}
		seen[string(l)] = true
	}
	if len(seen) != 32 {
		t.Fatalf("leaves not pairwise distinct: %d unique of 32", len(seen))
	}
}

func TestSeedTreeDeterministic(t *testing.T) {
	root := bytes.Repeat([]byte{0x02}, 16)
	t1 := BuildSeedTree(root, 32, 16).Leaves()
	t2 := BuildSeedTree(root, 32, 16).Leaves()
	for i := range t1 {
		if !bytes.Equal(t1[i], t2[i]) {
			t.Fatalf("seed tree leaf %d not reproducible", i)
		}
	}
}
