package mirath

import (
	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/mparams"
	"mirath-rx/internal/xof"
)

// execShares holds every party's additive share of (alpha, a, b, z) for one
// execution, plus the Beaver-mask totals the correction party's share is
// built from. Grounded on DECS/decs_prover.go's per-round share bookkeeping,
// generalized from a single shared polynomial to the four-way share this
// protocol's Beaver-triple linearization needs (see DESIGN.md).
type execShares struct {
	leaves      [][]byte
	alphaShares [][]gf2m.Elem // N entries, each length K
	aShares     [][]gf2m.Elem // N entries, each length R
	bShares     [][]gf2m.Elem // N entries, each length R*N (row-major RxN)
	zShares     [][]gf2m.Elem // N entries, each length N
	totalA      []gf2m.Elem
	totalB      []gf2m.Elem // flat R*N
	totalZ      []gf2m.Elem
}

// zero scrubs every secret share and seed this execution holds: the leaf
// seeds, the four per-party share vectors, and the Beaver-mask totals.
// Called once signWithSalt is done consuming an execution, per spec.md §5's
// bounded-lifetime rule for party seeds and shares. Seeds and shares that
// end up revealed in the signature (opening.revealedSeeds, opening.aux) are
// copied out before this runs, so zeroing here never touches the blob.
func (es *execShares) zero() {
	for _, leaf := range es.leaves {
		for i := range leaf {
			leaf[i] = 0
		}
	}
	for _, v := range es.alphaShares {
		gf2m.ZeroElems(v)
	}
	for _, v := range es.aShares {
		gf2m.ZeroElems(v)
	}
	for _, v := range es.bShares {
		gf2m.ZeroElems(v)
	}
	for _, v := range es.zShares {
		gf2m.ZeroElems(v)
	}
	gf2m.ZeroElems(es.totalA)
	gf2m.ZeroElems(es.totalB)
	gf2m.ZeroElems(es.totalZ)
}

// executionSeed returns the execution's root seed, derived from the
// master per-signature seed and the execution index.
func executionSeed(ps mparams.ParamSet, masterSeed []byte, execIdx int) []byte {
	return xof.Expand(xof.TagSeedTree, ps.LambdaBytes, masterSeed, []byte("exec"), putUint32(uint32(execIdx)))
}

// correctionParty is the index carrying aux_j, the last party (spec.md
// §4.D.2.b: "the last party's share is computed as the correction term").
func correctionParty(ps mparams.ParamSet) int { return ps.Parties - 1 }

// buildExecShares expands one execution's seed tree and derives every
// party's additive share of (alpha, a, b, z), with the correction party's
// share computed so all shares sum to (alpha, totalA, totalB, totalZ).
func buildExecShares(f *gf2m.Field, ps mparams.ParamSet, execSeed []byte, alpha []gf2m.Elem) execShares {
	tree := xof.BuildSeedTree(execSeed, ps.Parties, ps.LambdaBytes)
	leaves := tree.Leaves()

	totalAB := xof.FieldVector(xof.TagPartyShare, ps.R+ps.R*ps.N, execSeed, []byte("beaver-total"))
	totalA := totalAB[:ps.R]
	totalB := totalAB[ps.R:]
	totalZ := gf2m.RowVecMulMatrix(f, totalA, gf2m.MatrixFromFlat(ps.R, ps.N, totalB))

	es := execShares{
		leaves:      leaves,
		alphaShares: make([][]gf2m.Elem, ps.Parties),
		aShares:     make([][]gf2m.Elem, ps.Parties),
		bShares:     make([][]gf2m.Elem, ps.Parties),
		zShares:     make([][]gf2m.Elem, ps.Parties),
		totalA:      totalA,
		totalB:      totalB,
		totalZ:      totalZ,
	}

	sumAlpha := make([]gf2m.Elem, ps.K)
	sumA := make([]gf2m.Elem, ps.R)
	sumB := make([]gf2m.Elem, ps.R*ps.N)
	sumZ := make([]gf2m.Elem, ps.N)

	cp := correctionParty(ps)
	for i := 0; i < cp; i++ {
		vals := xof.FieldVector(xof.TagPartyShare, ps.K+ps.R+ps.R*ps.N+ps.N, leaves[i])
		es.alphaShares[i] = vals[:ps.K]
		es.aShares[i] = vals[ps.K : ps.K+ps.R]
		es.bShares[i] = vals[ps.K+ps.R : ps.K+ps.R+ps.R*ps.N]
		es.zShares[i] = vals[ps.K+ps.R+ps.R*ps.N:]
		sumAlpha = gf2m.VecAdd(f, sumAlpha, es.alphaShares[i])
		sumA = gf2m.VecAdd(f, sumA, es.aShares[i])
		sumB = gf2m.VecAdd(f, sumB, es.bShares[i])
		sumZ = gf2m.VecAdd(f, sumZ, es.zShares[i])
	}
	es.alphaShares[cp] = gf2m.VecAdd(f, alpha, sumAlpha)
	es.aShares[cp] = gf2m.VecAdd(f, totalA, sumA)
	es.bShares[cp] = gf2m.VecAdd(f, totalB, sumB)
	es.zShares[cp] = gf2m.VecAdd(f, totalZ, sumZ)
	return es
}

// auxElemsFor packs the correction party's (alpha, a, b, z) share into the
// aux_j nibble vector, in the fixed order auxWidth expects.
func auxElemsFor(es execShares, ps mparams.ParamSet) []gf2m.Elem {
	cp := correctionParty(ps)
	out := make([]gf2m.Elem, 0, auxWidth(ps))
	out = append(out, es.alphaShares[cp]...)
	out = append(out, es.aShares[cp]...)
	out = append(out, es.bShares[cp]...)
	out = append(out, es.zShares[cp]...)
	return out
}

// commitPayload returns the bytes committed for party i within execution j:
// its leaf seed, plus the real aux elements when i is the correction party
// (spec.md §4.D.2.d: "sd_{j,i} || (aux_j if i = N)").
func commitPayload(es execShares, ps mparams.ParamSet, i int) []byte {
	payload := append([]byte(nil), es.leaves[i]...)
	if i == correctionParty(ps) {
		payload = append(payload, gf2m.PackNibbles(auxElemsFor(es, ps))...)
	}
	return payload
}

// beaverMasks computes the public opening (d_j, e_j) of the Beaver
// triple for one execution: d_j = gamma^T*S - totalA, e_j = C - totalB.
// Both are safe to reveal because (totalA, totalB) are uniformly random
// per-execution masks never used anywhere else.
func beaverMasks(f *gf2m.Field, ps mparams.ParamSet, gamma []gf2m.Elem, s *gf2m.Matrix, c *gf2m.Matrix, es execShares) (dMask []gf2m.Elem, eMask []gf2m.Elem) {
	sPrime := gf2m.RowVecMulMatrix(f, gamma, s) // 1xR
	dMask = gf2m.VecAdd(f, sPrime, es.totalA)
	totalBMat := gf2m.MatrixFromFlat(ps.R, ps.N, es.totalB)
	eMaskMat, err := gf2m.Add(f, c, totalBMat)
	if err != nil {
		// Dimensions are fixed by ParamSet and checked at Lookup time.
		panic(err)
	}
	eMask = eMaskMat.Flat()
	return dMask, eMask
}

// gammaRowProducts returns gamma^T*M0 and gamma^T*M_t for t=0..K-1, the
// per-execution linear folds every party's message is built from.
func gammaRowProducts(f *gf2m.Field, gamma []gf2m.Elem, m0 *gf2m.Matrix, mats []*gf2m.Matrix) (gammaM0 []gf2m.Elem, gammaMt [][]gf2m.Elem) {
	gammaM0 = gf2m.RowVecMulMatrix(f, gamma, m0)
	gammaMt = make([][]gf2m.Elem, len(mats))
	for t, m := range mats {
		gammaMt[t] = gf2m.RowVecMulMatrix(f, gamma, m)
	}
	return gammaM0, gammaMt
}

// partyMessage computes msg_i, the outbound broadcast of party i within an
// execution, under the first-round challenge gamma. The global sum
// Sum_i msg_i collapses to gamma^T*(M0 + Sum alpha_t*M_t - S*C) (the zero
// vector exactly when the MinRank relation holds): party 0 carries the
// gamma^T*M0 and d.e correction terms so no term is double counted.
func partyMessage(f *gf2m.Field, ps mparams.ParamSet, partyIdx int, gammaM0 []gf2m.Elem, gammaMt [][]gf2m.Elem, alphaShare, aShare, bShareFlat, zShare, dMask, eMask []gf2m.Elem) []gf2m.Elem {
	msg := make([]gf2m.Elem, ps.N)
	if partyIdx == 0 {
		msg = gf2m.VecAdd(f, msg, gammaM0)
	}
	for t, a := range alphaShare {
		if f.IsZero(a) {
			continue
		}
		msg = gf2m.VecAdd(f, msg, gf2m.VecScalarMul(f, a, gammaMt[t]))
	}
	bMat := gf2m.MatrixFromFlat(ps.R, ps.N, bShareFlat)
	eMat := gf2m.MatrixFromFlat(ps.R, ps.N, eMask)
	msg = gf2m.VecAdd(f, msg, gf2m.RowVecMulMatrix(f, dMask, bMat))
	msg = gf2m.VecAdd(f, msg, gf2m.RowVecMulMatrix(f, aShare, eMat))
	msg = gf2m.VecAdd(f, msg, zShare)
	if partyIdx == 0 {
		msg = gf2m.VecAdd(f, msg, gf2m.RowVecMulMatrix(f, dMask, eMat))
	}
	return msg
}

// sumIsZero checks the global consistency condition spec.md §4.D.4/verify
// step 4 reduces to: the reconstructed per-execution messages sum to the
// zero vector.
func sumIsZero(f *gf2m.Field, msgs [][]gf2m.Elem, width int) bool {
	sum := make([]gf2m.Elem, width)
	for _, m := range msgs {
		sum = gf2m.VecAdd(f, sum, m)
	}
	for _, e := range sum {
		if !f.IsZero(e) {
			return false
		}
	}
	return true
}
