package mirath

import (
	"fmt"
	"io"

	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/minrank"
	"mirath-rx/internal/xof"
)

// Sign runs the commit/challenge/response protocol of spec.md §4.D and
// returns the signature blob. message must already be the canonical byte
// encoding (prescription.Canonicalize's output, or any caller-supplied
// canonical bytes in the general case).
func Sign(sk SecretKey, message []byte, rng io.Reader) (Signature, error) {
	ps := sk.Params
	if err := ps.Validate(); err != nil {
		return Signature{}, fmt.Errorf("mirath: sign: %w", err)
	}
	salt := make([]byte, ps.DigestBytes())
	if _, err := io.ReadFull(rng, salt); err != nil {
		return Signature{}, fmt.Errorf("mirath: sign: reading entropy: %w", err)
	}
	return signWithSalt(sk, message, salt)
}

// signWithSalt is Sign with salt supplied directly rather than drawn from
// rng, so deterministic test vectors (spec.md §8's known-answer fixtures)
// can pin salt alongside seed_sec.
func signWithSalt(sk SecretKey, message []byte, salt []byte) (Signature, error) {
	ps := sk.Params
	f := gf2m.GF16

	seedPub := xof.Expand(xof.TagPublicSeed, ps.LambdaBytes, sk.SeedSec)
	alpha, s, c := minrank.DeriveSecret(ps, sk.SeedSec)
	defer gf2m.ZeroElems(alpha)
	defer s.Zero()
	defer c.Zero()
	mats := minrank.DeriveMatrices(ps, seedPub)
	m0, err := minrank.ComputeM0(f, alpha, mats, s, c)
	if err != nil {
		return Signature{}, fmt.Errorf("mirath: sign: %w", err)
	}

	pk := PublicKey{Params: ps, SeedPub: seedPub, Y: minrank.CloseKey(ps, m0, mats)}

	masterSeed := xof.Expand(xof.TagMasterSeed, ps.LambdaBytes, sk.SeedSec, salt, message)

	execs := make([]execShares, ps.Tau)
	defer func() {
		for i := range execs {
			execs[i].zero()
		}
	}()
	commits := make([][][]byte, ps.Tau) // [j][i] -> digest
	for j := 0; j < ps.Tau; j++ {
		execSeed := executionSeed(ps, masterSeed, j)
		es := buildExecShares(f, ps, execSeed, alpha)
		execs[j] = es
		commits[j] = make([][]byte, ps.Parties)
		for i := 0; i < ps.Parties; i++ {
			commits[j][i] = xof.Commit(salt, j, i, commitPayload(es, ps, i), ps.DigestBytes())
		}
	}

	h1 := computeH1(ps, salt, pk, message, commits)
	gammas := deriveGammas(ps, h1)

	dMasks := make([][]gf2m.Elem, ps.Tau)
	eMasks := make([][]gf2m.Elem, ps.Tau)
	msgs := make([][][]gf2m.Elem, ps.Tau) // [j][i]
	for j := 0; j < ps.Tau; j++ {
		d, e := beaverMasks(f, ps, gammas[j], s, c, execs[j])
		dMasks[j] = d
		eMasks[j] = e
		gammaM0, gammaMt := gammaRowProducts(f, gammas[j], m0, mats)
		msgs[j] = make([][]gf2m.Elem, ps.Parties)
		for i := 0; i < ps.Parties; i++ {
			msgs[j][i] = partyMessage(f, ps, i, gammaM0, gammaMt,
				execs[j].alphaShares[i], execs[j].aShares[i], execs[j].bShares[i], execs[j].zShares[i],
				dMasks[j], eMasks[j])
		}
	}

	h2 := computeH2(ps, salt, h1, msgs)
	hidden := deriveHiddenIndices(ps, h2)

	sig := Signature{Params: ps, Salt: salt, H1: h1, H2: h2, M0: m0}
	cp := correctionParty(ps)
	for j := 0; j < ps.Tau; j++ {
		hi := hidden[j]
		o := opening{
			hiddenCommit: commits[j][hi],
			hiddenMsg:    msgs[j][hi],
			dMask:        dMasks[j],
			eMask:        eMasks[j],
		}
		for i := 0; i < ps.Parties; i++ {
			if i == hi {
				continue
			}
			o.revealedSeeds = append(o.revealedSeeds, append([]byte(nil), execs[j].leaves[i]...))
		}
		if hi == cp {
			o.aux = make([]gf2m.Elem, auxWidth(ps))
		} else {
			o.aux = auxElemsFor(execs[j], ps)
		}
		sig.openings = append(sig.openings, o)
	}
	return sig, nil
}
