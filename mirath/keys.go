package mirath

import (
	"fmt"
	"io"

	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/minrank"
	"mirath-rx/internal/mparams"
	"mirath-rx/internal/xof"
)

// GenerateKeyPair draws seed_sec from rng and derives the rest of the
// MinRank instance deterministically, per spec.md §6's keygen(params, rng).
// Grounded on ntru/keygen.go's thin dispatch: read entropy, hand off to the
// derivation routine, package the result.
func GenerateKeyPair(ps mparams.ParamSet, rng io.Reader) (PublicKey, SecretKey, error) {
	if err := ps.Validate(); err != nil {
		return PublicKey{}, SecretKey{}, fmt.Errorf("mirath: keygen: %w", err)
	}
	seedSec := make([]byte, ps.LambdaBytes)
	if _, err := io.ReadFull(rng, seedSec); err != nil {
		return PublicKey{}, SecretKey{}, fmt.Errorf("mirath: keygen: reading entropy: %w", err)
	}
	pk, sk, err := deriveKeyPair(ps, seedSec)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	return pk, sk, nil
}

// deriveKeyPair rebuilds (PK, SK) from a fixed seed_sec, used by both
// GenerateKeyPair and the known-answer test vectors in spec.md §8 that
// pin seed_sec to an all-zero or small constant value.
func deriveKeyPair(ps mparams.ParamSet, seedSec []byte) (PublicKey, SecretKey, error) {
	f := gf2m.GF16
	seedPub := xof.Expand(xof.TagPublicSeed, ps.LambdaBytes, seedSec)

	alpha, s, c := minrank.DeriveSecret(ps, seedSec)
	defer gf2m.ZeroElems(alpha)
	defer s.Zero()
	defer c.Zero()
	mats := minrank.DeriveMatrices(ps, seedPub)
	m0, err := minrank.ComputeM0(f, alpha, mats, s, c)
	if err != nil {
		return PublicKey{}, SecretKey{}, fmt.Errorf("mirath: keygen: %w", err)
	}
	ok, err := minrank.CheckRelation(f, m0, alpha, mats, s, c)
	if err != nil {
		return PublicKey{}, SecretKey{}, fmt.Errorf("mirath: keygen: %w", err)
	}
	if !ok {
		// Unreachable by construction: M0 is built so the relation holds
		// exactly. A failure here means a bug in ComputeM0/CheckRelation,
		// not a runtime condition a caller can act on.
		return PublicKey{}, SecretKey{}, fmt.Errorf("mirath: keygen: relation self-check failed")
	}
	y := minrank.CloseKey(ps, m0, mats)

	pk := PublicKey{Params: ps, SeedPub: seedPub, Y: y}
	sk := SecretKey{Params: ps, SeedSec: append([]byte(nil), seedSec...)}
	return pk, sk, nil
}
