package xof

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"mirath-rx/internal/gf2m"
)

// rejectBound is the open question spec.md §9 flags: "the reference is
// unclear on exact rejection-sampling procedure when parsing challenges
// into field elements." This package fixes and documents one: GF(2^4)
// nibbles are rejection-sampled from bytes, accepting values strictly
// below 240 (the largest multiple of 16 that fits a byte) so the map onto
// {0..15} is exactly uniform, and rejecting otherwise. The loop has no
// early-exit that depends on a *secret* value (challenges are derived
// from public transcript material only), so it need not be constant time
// by spec.md §4.A's own carve-out — but the bound itself is fixed and
// documented rather than left to an implementation-defined guess.
const rejectBound = 240

// FieldVector derives `count` near-uniform GF(2^m) elements (m<=4 in the
// one registered parameter set) from a SHAKE-256 stream seeded by tag and
// parts. Grounded on DECS/decs_prover.go's DeriveGamma: a rejection loop
// reading one byte at a time from a PRF stream, here swapping DeriveGamma's
// 64-bit/uint64-modulus rejection for an 8-bit/nibble one sized to GF(16).
func FieldVector(tag byte, count int, parts ...[]byte) []gf2m.Elem {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte{tag})
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	out := make([]gf2m.Elem, count)
	var buf [1]byte
	for i := 0; i < count; {
		_, _ = h.Read(buf[:])
		if buf[0] >= rejectBound {
			continue
		}
		out[i] = gf2m.Elem(buf[0] % 16)
		i++
	}
	return out
}

// SubsetIndex derives one "hidden party" index uniform in [0, parties) per
// execution, the spec.md §4.B.3 "uniform subset selection of size N-1 out
// of N" (equivalently: pick the single excluded party). parties must be a
// power of two (enforced by mparams.ParamSet.Validate), so rejection
// sampling is unnecessary: a fixed-width read masked to the bit width of
// parties is already exactly uniform.
func SubsetIndex(parties int, tag byte, parts ...[]byte) int {
	bits := 0
	for (1 << uint(bits)) < parties {
		bits++
	}
	h := sha3.NewShake256()
	_, _ = h.Write([]byte{tag})
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var buf [4]byte
	_, _ = h.Read(buf[:])
	v := binary.LittleEndian.Uint32(buf[:])
	mask := uint32(parties - 1)
	return int(v & mask)
}
