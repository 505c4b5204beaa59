package mirath

import (
	"bytes"

	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/minrank"
	"mirath-rx/internal/xof"
)

// Verify checks a signature blob against a public key and canonical
// message, per spec.md §6's verify(params, PK_bytes, message_bytes,
// blob_bytes) -> bool. It never throws: any malformed or inconsistent
// input yields false rather than an error or panic (spec.md §7).
func Verify(pk PublicKey, message []byte, sig Signature) (accept bool) {
	defer func() {
		if recover() != nil {
			accept = false
		}
	}()

	ps := pk.Params
	if sig.Params.Tag != ps.Tag || len(sig.openings) != ps.Tau || sig.M0 == nil {
		return false
	}
	if len(sig.Salt) != ps.DigestBytes() || len(sig.H1) != ps.DigestBytes() || len(sig.H2) != ps.DigestBytes() {
		return false
	}

	f := gf2m.GF16
	mats := minrank.DeriveMatrices(ps, pk.SeedPub)
	if !bytes.Equal(pk.Y, minrank.CloseKey(ps, sig.M0, mats)) {
		return false
	}

	gammas := deriveGammas(ps, sig.H1)
	hidden := deriveHiddenIndices(ps, sig.H2)
	cp := correctionParty(ps)

	commits := make([][][]byte, ps.Tau)
	msgs := make([][][]gf2m.Elem, ps.Tau)

	for j := 0; j < ps.Tau; j++ {
		o := sig.openings[j]
		if len(o.revealedSeeds) != ps.Parties-1 {
			return false
		}
		hi := hidden[j]
		gammaM0, gammaMt := gammaRowProducts(f, gammas[j], sig.M0, mats)

		commits[j] = make([][]byte, ps.Parties)
		msgs[j] = make([][]gf2m.Elem, ps.Parties)

		seedPos := 0
		for i := 0; i < ps.Parties; i++ {
			if i == hi {
				commits[j][i] = o.hiddenCommit
				msgs[j][i] = o.hiddenMsg
				continue
			}
			leaf := o.revealedSeeds[seedPos]
			seedPos++

			var alphaShare, aShare, bShareFlat, zShare []gf2m.Elem
			var payload []byte
			if i == cp {
				alphaShare = o.aux[:ps.K]
				aShare = o.aux[ps.K : ps.K+ps.R]
				bShareFlat = o.aux[ps.K+ps.R : ps.K+ps.R+ps.R*ps.N]
				zShare = o.aux[ps.K+ps.R+ps.R*ps.N:]
				payload = append(append([]byte(nil), leaf...), gf2m.PackNibbles(o.aux)...)
			} else {
				vals := xof.FieldVector(xof.TagPartyShare, ps.K+ps.R+ps.R*ps.N+ps.N, leaf)
				alphaShare = vals[:ps.K]
				aShare = vals[ps.K : ps.K+ps.R]
				bShareFlat = vals[ps.K+ps.R : ps.K+ps.R+ps.R*ps.N]
				zShare = vals[ps.K+ps.R+ps.R*ps.N:]
				payload = leaf
			}
			commits[j][i] = xof.Commit(sig.Salt, j, i, payload, ps.DigestBytes())
			msgs[j][i] = partyMessage(f, ps, i, gammaM0, gammaMt, alphaShare, aShare, bShareFlat, zShare, o.dMask, o.eMask)
		}
		if !sumIsZero(f, msgs[j], ps.N) {
			return false
		}
	}

	h1Prime := computeH1(ps, sig.Salt, pk, message, commits)
	if !bytes.Equal(h1Prime, sig.H1) {
		return false
	}
	h2Prime := computeH2(ps, sig.Salt, h1Prime, msgs)
	if !bytes.Equal(h2Prime, sig.H2) {
		return false
	}
	return true
}
