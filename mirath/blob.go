// Package mirath implements spec.md §4.D: the commit/challenge/response
// MPC-in-the-Head signature protocol over a MinRank instance, and the
// wire layouts of spec.md §6 (PK_bytes, SK_bytes, blob_bytes). Grounded
// on ntru/params.go's validated-struct-plus-constructor idiom and
// ntru/keygen.go's thin generate-then-package shape, carried from lattice
// keys to MinRank witnesses.
package mirath

import (
	"encoding/binary"
	"errors"
	"fmt"

	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/mparams"
)

// Sentinel errors, spec.md §7's external-interface error table.
var (
	ErrInvalidKey    = errors.New("mirath: invalid key encoding")
	ErrInvalidParams = mparams.ErrInvalidParams
)

// PublicKey is PK_bytes unpacked: params_tag(1) || seed_pub(lambda) || y(2*lambda).
type PublicKey struct {
	Params  mparams.ParamSet
	SeedPub []byte
	Y       []byte
}

// Bytes serializes the public key per spec.md §6.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, 0, 1+len(pk.SeedPub)+len(pk.Y))
	out = append(out, pk.Params.Tag)
	out = append(out, pk.SeedPub...)
	out = append(out, pk.Y...)
	return out
}

// ParsePublicKey decodes PK_bytes, validating the params_tag and length.
func ParsePublicKey(data []byte) (PublicKey, error) {
	if len(data) < 1 {
		return PublicKey{}, fmt.Errorf("mirath: parse public key: %w", ErrInvalidKey)
	}
	ps, err := mparams.Lookup(data[0])
	if err != nil {
		return PublicKey{}, fmt.Errorf("mirath: parse public key: %w", err)
	}
	want := 1 + ps.LambdaBytes + ps.DigestBytes()
	if len(data) != want {
		return PublicKey{}, fmt.Errorf("mirath: parse public key: %w", ErrInvalidKey)
	}
	pk := PublicKey{
		Params:  ps,
		SeedPub: append([]byte(nil), data[1:1+ps.LambdaBytes]...),
		Y:       append([]byte(nil), data[1+ps.LambdaBytes:]...),
	}
	return pk, nil
}

// SecretKey is SK_bytes unpacked: params_tag(1) || seed_sec(lambda). All
// other secret material (alpha, S, C, per-execution masks) is re-derived
// from seed_sec at sign time rather than stored.
type SecretKey struct {
	Params  mparams.ParamSet
	SeedSec []byte
}

// Bytes serializes the secret key per spec.md §6.
func (sk SecretKey) Bytes() []byte {
	out := make([]byte, 0, 1+len(sk.SeedSec))
	out = append(out, sk.Params.Tag)
	out = append(out, sk.SeedSec...)
	return out
}

// ParseSecretKey decodes SK_bytes.
func ParseSecretKey(data []byte) (SecretKey, error) {
	if len(data) < 1 {
		return SecretKey{}, fmt.Errorf("mirath: parse secret key: %w", ErrInvalidKey)
	}
	ps, err := mparams.Lookup(data[0])
	if err != nil {
		return SecretKey{}, fmt.Errorf("mirath: parse secret key: %w", err)
	}
	if len(data) != 1+ps.LambdaBytes {
		return SecretKey{}, fmt.Errorf("mirath: parse secret key: %w", ErrInvalidKey)
	}
	return SecretKey{Params: ps, SeedSec: append([]byte(nil), data[1:]...)}, nil
}

// Zeroize overwrites the seed in place. Spec.md §9's secret-material
// lifecycle requirement: callers must scrub a SecretKey once it is no
// longer needed.
func (sk *SecretKey) Zeroize() {
	for i := range sk.SeedSec {
		sk.SeedSec[i] = 0
	}
}

// auxWidth returns the number of GF(2^4) elements covered by aux_j: the
// correction shares of (alpha, a, b, z) held by the designated
// correction party, in that order. Wider than spec.md §6's illustrative
// r*n*m-bit aux (the width of a C-only correction) because this
// protocol's single-round bilinear check needs a Beaver triple, not a
// bare additive share of C — see DESIGN.md's single-round bilinear check for the
// recorded deviation and why it is necessary for soundness in one round.
func auxWidth(ps mparams.ParamSet) int {
	return ps.K + ps.R + ps.R*ps.N + ps.N
}

// msgWidth is the width, in GF(2^4) elements, of one party's outbound
// message: a single 1xN row vector.
func msgWidth(ps mparams.ParamSet) int { return ps.N }

// dMaskWidth and eMaskWidth give the width, in GF(2^4) elements, of the per-execution
// public Beaver-mask openings d_j (1xR) and e_j (RxN) — fields this
// protocol adds to spec.md's literal blob_bytes layout so the hidden
// row-folded product can be checked in a single broadcast round. See
// DESIGN.md.
func dMaskWidth(ps mparams.ParamSet) int { return ps.R }
func eMaskWidth(ps mparams.ParamSet) int { return ps.R * ps.N }

// opening is one execution's revealed material.
type opening struct {
	revealedSeeds [][]byte // Parties-1 entries, ascending party index, hidden skipped
	hiddenCommit  []byte   // digest width
	hiddenMsg     []gf2m.Elem
	aux           []gf2m.Elem // auxWidth(ps) elements; all-zero when the hidden party is the correction party
	dMask         []gf2m.Elem // r elements
	eMask         []gf2m.Elem // r*n elements, row-major
}

func (o opening) bytes(ps mparams.ParamSet) []byte {
	var out []byte
	for _, s := range o.revealedSeeds {
		out = append(out, s...)
	}
	out = append(out, o.hiddenCommit...)
	out = append(out, gf2m.PackNibbles(o.hiddenMsg)...)
	out = append(out, gf2m.PackNibbles(o.aux)...)
	out = append(out, gf2m.PackNibbles(o.dMask)...)
	out = append(out, gf2m.PackNibbles(o.eMask)...)
	return out
}

// openingByteLen returns the fixed per-execution record length in bytes.
func openingByteLen(ps mparams.ParamSet) int {
	return (ps.Parties-1)*ps.LambdaBytes +
		ps.DigestBytes() +
		gf2m.NibbleBytes(msgWidth(ps)) +
		gf2m.NibbleBytes(auxWidth(ps)) +
		gf2m.NibbleBytes(dMaskWidth(ps)) +
		gf2m.NibbleBytes(eMaskWidth(ps))
}

func parseOpening(ps mparams.ParamSet, data []byte) (opening, error) {
	if len(data) != openingByteLen(ps) {
		return opening{}, fmt.Errorf("mirath: parse opening: %w", ErrInvalidKey)
	}
	pos := 0
	o := opening{}
	for i := 0; i < ps.Parties-1; i++ {
		o.revealedSeeds = append(o.revealedSeeds, append([]byte(nil), data[pos:pos+ps.LambdaBytes]...))
		pos += ps.LambdaBytes
	}
	o.hiddenCommit = append([]byte(nil), data[pos:pos+ps.DigestBytes()]...)
	pos += ps.DigestBytes()
	mw := gf2m.NibbleBytes(msgWidth(ps))
	o.hiddenMsg = gf2m.UnpackNibbles(data[pos:pos+mw], msgWidth(ps))
	pos += mw
	aw := gf2m.NibbleBytes(auxWidth(ps))
	o.aux = gf2m.UnpackNibbles(data[pos:pos+aw], auxWidth(ps))
	pos += aw
	dw := gf2m.NibbleBytes(dMaskWidth(ps))
	o.dMask = gf2m.UnpackNibbles(data[pos:pos+dw], dMaskWidth(ps))
	pos += dw
	ew := gf2m.NibbleBytes(eMaskWidth(ps))
	o.eMask = gf2m.UnpackNibbles(data[pos:pos+ew], eMaskWidth(ps))
	pos += ew
	return o, nil
}

// Signature is blob_bytes unpacked. M0 is carried in the blob rather than
// the public key: PK_bytes stores only y = commit(M0, M1..Mk), so the
// public key stays a fixed, small 1+lambda+2*lambda bytes regardless of
// matrix dimensions, and every signature carries the one instance matrix
// the verifier needs, checked against y before anything else. See
// DESIGN.md for why this sits outside spec.md's literal blob_bytes field
// list: M0 depends on seed_sec (spec.md §4.C), so it cannot be re-derived
// from seed_pub alone the way M1..Mk can.
type Signature struct {
	Params   mparams.ParamSet
	Salt     []byte
	H1       []byte
	H2       []byte
	M0       *gf2m.Matrix
	openings []opening
}

func m0ByteLen(ps mparams.ParamSet) int { return gf2m.NibbleBytes(ps.N * ps.N) }

// Bytes serializes the signature per spec.md §6's blob_bytes layout,
// extended with the M0 block described above.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, 1+len(sig.Salt)+len(sig.H1)+len(sig.H2)+m0ByteLen(sig.Params)+len(sig.openings)*openingByteLen(sig.Params))
	out = append(out, sig.Params.Tag)
	out = append(out, sig.Salt...)
	out = append(out, sig.H1...)
	out = append(out, sig.H2...)
	out = append(out, gf2m.PackNibbles(sig.M0.Flat())...)
	for _, o := range sig.openings {
		out = append(out, o.bytes(sig.Params)...)
	}
	return out
}

// ParseSignature decodes blob_bytes.
func ParseSignature(data []byte) (Signature, error) {
	if len(data) < 1 {
		return Signature{}, fmt.Errorf("mirath: parse signature: %w", ErrInvalidKey)
	}
	ps, err := mparams.Lookup(data[0])
	if err != nil {
		return Signature{}, fmt.Errorf("mirath: parse signature: %w", err)
	}
	headerLen := 1 + 3*ps.DigestBytes() + m0ByteLen(ps)
	recLen := openingByteLen(ps)
	want := headerLen + ps.Tau*recLen
	if len(data) != want {
		return Signature{}, fmt.Errorf("mirath: parse signature: %w", ErrInvalidKey)
	}
	pos := 1
	salt := append([]byte(nil), data[pos:pos+ps.DigestBytes()]...)
	pos += ps.DigestBytes()
	h1 := append([]byte(nil), data[pos:pos+ps.DigestBytes()]...)
	pos += ps.DigestBytes()
	h2 := append([]byte(nil), data[pos:pos+ps.DigestBytes()]...)
	pos += ps.DigestBytes()
	m0Bytes := data[pos : pos+m0ByteLen(ps)]
	pos += m0ByteLen(ps)
	m0 := gf2m.MatrixFromFlat(ps.N, ps.N, gf2m.UnpackNibbles(m0Bytes, ps.N*ps.N))
	sig := Signature{Params: ps, Salt: salt, H1: h1, H2: h2, M0: m0}
	for j := 0; j < ps.Tau; j++ {
		o, err := parseOpening(ps, data[pos:pos+recLen])
		if err != nil {
			return Signature{}, err
		}
		sig.openings = append(sig.openings, o)
		pos += recLen
	}
	return sig, nil
}

func putUint32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}
