package mirath

import (
	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/mparams"
	"mirath-rx/internal/xof"
)

// computeH1 folds every commitment across all tau executions and N parties
// into the first Fiat-Shamir challenge hash, spec.md §4.D.3:
// h_1 = H_1(salt, PK, message, all com_{j,i}).
func computeH1(ps mparams.ParamSet, salt []byte, pk PublicKey, message []byte, commits [][][]byte) []byte {
	parts := [][]byte{salt, {pk.Params.Tag}, pk.SeedPub, pk.Y, message}
	for _, row := range commits {
		parts = append(parts, row...)
	}
	return xof.Expand(xof.TagChallenge1, ps.DigestBytes(), parts...)
}

// deriveGammas parses h_1 into one row-folding challenge vector gamma_j
// per execution (spec.md §4.D.3: "Parse h_1 into per-execution first-round
// field challenges gamma_j").
func deriveGammas(ps mparams.ParamSet, h1 []byte) [][]gf2m.Elem {
	out := make([][]gf2m.Elem, ps.Tau)
	for j := 0; j < ps.Tau; j++ {
		out[j] = xof.FieldVector(xof.TagChallenge1, ps.N, h1, putUint32(uint32(j)))
	}
	return out
}

// computeH2 folds every party's outbound message across all executions
// into the second challenge hash, spec.md §4.D.5:
// h_2 = H_2(salt, h_1, all msg_{j,i}).
func computeH2(ps mparams.ParamSet, salt, h1 []byte, msgs [][][]gf2m.Elem) []byte {
	parts := [][]byte{salt, h1}
	for _, row := range msgs {
		for _, m := range row {
			parts = append(parts, gf2m.PackNibbles(m))
		}
	}
	return xof.Expand(xof.TagChallenge2, ps.DigestBytes(), parts...)
}

// deriveHiddenIndices parses h_2 into one hidden-party index per execution
// (spec.md §4.D.5: "Parse h_2 into, per execution, one hidden-party index").
func deriveHiddenIndices(ps mparams.ParamSet, h2 []byte) []int {
	out := make([]int, ps.Tau)
	for j := 0; j < ps.Tau; j++ {
		out[j] = xof.SubsetIndex(ps.Parties, xof.TagChallenge2, h2, putUint32(uint32(j)))
	}
	return out
}
