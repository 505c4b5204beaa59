// Package minrank implements spec.md §4.C: the public MinRank instance
// (matrix family {M_0..M_k} plus the binding fingerprint y) and the secret
// low-rank witness (alpha, S, C) with S*C = M_0 + Sum alpha_i*M_i. Grounded
// on commitment/linear.go's Commit/Verify build-then-check pair and
// prf/prf.go's Tag (expand a seed, then fold a correction term in).
package minrank

import (
	"mirath-rx/internal/gf2m"
	"mirath-rx/internal/mparams"
	"mirath-rx/internal/xof"
)

// DeriveMatrices expands seed_pub into the public matrix family M_1..M_k,
// each n x n, per spec.md §4.C: "the first k blocks of
// expand(seed_pub, TAG_M, ...) parsed as n x n field matrices."
func DeriveMatrices(ps mparams.ParamSet, seedPub []byte) []*gf2m.Matrix {
	total := ps.K * ps.N * ps.N
	elems := xof.FieldVector(xof.TagMatrixExpand, total, seedPub)
	out := make([]*gf2m.Matrix, ps.K)
	pos := 0
	for t := 0; t < ps.K; t++ {
		m := gf2m.NewMatrix(ps.N, ps.N)
		for r := 0; r < ps.N; r++ {
			for c := 0; c < ps.N; c++ {
				m.Set(r, c, elems[pos])
				pos++
			}
		}
		out[t] = m
	}
	return out
}

// DeriveSecret expands seed_sec into the witness (alpha, S, C), per
// spec.md §4.D keygen: "Derive (alpha, S, C)" from seed_sec.
func DeriveSecret(ps mparams.ParamSet, seedSec []byte) (alpha []gf2m.Elem, s, c *gf2m.Matrix) {
	alpha = xof.FieldVector(xof.TagSecretExpand, ps.K, seedSec, []byte("alpha"))
	sElems := xof.FieldVector(xof.TagSecretExpand, ps.N*ps.R, seedSec, []byte("S"))
	cElems := xof.FieldVector(xof.TagSecretExpand, ps.R*ps.N, seedSec, []byte("C"))
	s = gf2m.NewMatrix(ps.N, ps.R)
	for r := 0; r < ps.N; r++ {
		for col := 0; col < ps.R; col++ {
			s.Set(r, col, sElems[r*ps.R+col])
		}
	}
	c = gf2m.NewMatrix(ps.R, ps.N)
	for r := 0; r < ps.R; r++ {
		for col := 0; col < ps.N; col++ {
			c.Set(r, col, cElems[r*ps.N+col])
		}
	}
	return alpha, s, c
}

// ComputeM0 returns M0 = S*C - Sum alpha_i*M_i, the correction term that
// makes the relation hold exactly by construction (spec.md §4.C/§4.D).
func ComputeM0(f *gf2m.Field, alpha []gf2m.Elem, mats []*gf2m.Matrix, s, c *gf2m.Matrix) (*gf2m.Matrix, error) {
	sc, err := gf2m.Mul(f, s, c)
	if err != nil {
		return nil, err
	}
	acc := sc.Clone()
	for i, a := range alpha {
		if f.IsZero(a) {
			continue
		}
		scaled := gf2m.ScalarMul(f, a, mats[i])
		acc, err = gf2m.Add(f, acc, scaled)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// CheckRelation confirms M0 + Sum alpha_i*M_i == S*C exactly, spec.md
// §4.C's relation check ("keygen re-checks this invariant before
// returning; failure is an implementation bug, not a runtime error").
func CheckRelation(f *gf2m.Field, m0 *gf2m.Matrix, alpha []gf2m.Elem, mats []*gf2m.Matrix, s, c *gf2m.Matrix) (bool, error) {
	lhs := m0.Clone()
	var err error
	for i, a := range alpha {
		if f.IsZero(a) {
			continue
		}
		lhs, err = gf2m.Add(f, lhs, gf2m.ScalarMul(f, a, mats[i]))
		if err != nil {
			return false, err
		}
	}
	rhs, err := gf2m.Mul(f, s, c)
	if err != nil {
		return false, err
	}
	return gf2m.Equal(f, lhs, rhs), nil
}

// EncodeMatrices flattens M0 followed by M1..Mk into a byte string for
// hashing, in row-major nibble order, two nibbles packed per byte.
func EncodeMatrices(m0 *gf2m.Matrix, mats []*gf2m.Matrix) []byte {
	all := append([]*gf2m.Matrix{m0}, mats...)
	var nibbles []gf2m.Elem
	for _, m := range all {
		for r := 0; r < m.Rows; r++ {
			for c := 0; c < m.Cols; c++ {
				nibbles = append(nibbles, m.At(r, c))
			}
		}
	}
	out := make([]byte, (len(nibbles)+1)/2)
	for i, e := range nibbles {
		if i%2 == 0 {
			out[i/2] = byte(e) & 0x0F
		} else {
			out[i/2] |= (byte(e) & 0x0F) << 4
		}
	}
	return out
}

// CloseKey computes y = commit(empty_salt, 0, 0, encode(M0, M1..Mk)),
// binding the instance to the public key (spec.md §4.C).
func CloseKey(ps mparams.ParamSet, m0 *gf2m.Matrix, mats []*gf2m.Matrix) []byte {
	payload := EncodeMatrices(m0, mats)
	emptySalt := make([]byte, ps.LambdaBytes*2)
	return xof.Commit(emptySalt, 0, 0, payload, ps.DigestBytes())
}
