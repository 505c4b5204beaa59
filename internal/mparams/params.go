// Package mparams is the closed parameter-tag registry spec.md §6
// mandates: only tag 0x01 is recognized today, and an unrecognized tag is
// always a hard InvalidParams failure. Grounded on prf/params.go's
// Params.Validate() field-by-field range checking and ntru/params.go's
// NewParams constructor-with-validation idiom, adapted from a loaded-from-
// JSON struct to an immutable compiled-in table since spec.md closes the
// tag space rather than leaving it caller-configurable.
package mparams

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned whenever a params_tag is absent from the
// registry, or a ParamSet fails its own internal consistency checks.
var ErrInvalidParams = errors.New("mparams: invalid or unrecognized parameter tag")

// ParamSet is the immutable record spec.md §3 describes: field degree m,
// MinRank dimensions (n, k, r), parties per execution N, repetitions Tau,
// and the security parameter Lambda (bytes, not bits, for convenience —
// spec.md's "commitment digest length 2λ" and "λ-bit seeds" are derived
// from LambdaBytes below).
type ParamSet struct {
	Tag         byte
	M           int // GF(2^m) field degree
	N           int // matrix dimension (rows=cols of M_i)
	K           int // number of public matrices / alpha coordinates
	R           int // target rank bound
	Parties     int // N in spec.md: parties per execution
	Tau         int // repetitions
	LambdaBytes int // seed width in bytes (lambda bits / 8)
}

// DigestBytes returns the commitment/hash digest width (2*lambda bits).
func (p ParamSet) DigestBytes() int { return 2 * p.LambdaBytes }

// Validate checks internal consistency of a ParamSet.
func (p ParamSet) Validate() error {
	if p.M <= 0 || p.M > 16 {
		return fmt.Errorf("%w: m out of range", ErrInvalidParams)
	}
	if p.N <= 0 || p.K <= 0 || p.R <= 0 || p.R > p.N {
		return fmt.Errorf("%w: invalid MinRank dimensions", ErrInvalidParams)
	}
	if p.Parties <= 1 || p.Parties&(p.Parties-1) != 0 {
		return fmt.Errorf("%w: Parties must be a power of two greater than one", ErrInvalidParams)
	}
	if p.Tau <= 0 {
		return fmt.Errorf("%w: Tau must be positive", ErrInvalidParams)
	}
	if p.LambdaBytes <= 0 {
		return fmt.Errorf("%w: LambdaBytes must be positive", ErrInvalidParams)
	}
	return nil
}

// TagBaseline is the one registered params_tag, spec.md §6: m=4, n=15,
// k=78, r=6, N=32, tau=39, lambda=128 (16 bytes).
const TagBaseline byte = 0x01

var registry = map[byte]ParamSet{
	TagBaseline: {
		Tag:         TagBaseline,
		M:           4,
		N:           15,
		K:           78,
		R:           6,
		Parties:     32,
		Tau:         39,
		LambdaBytes: 16,
	},
}

// Lookup resolves a params_tag to its ParamSet. Unknown tags are a hard
// failure, never silently defaulted (spec.md §6/§7).
func Lookup(tag byte) (ParamSet, error) {
	ps, ok := registry[tag]
	if !ok {
		return ParamSet{}, ErrInvalidParams
	}
	if err := ps.Validate(); err != nil {
		return ParamSet{}, err
	}
	return ps, nil
}
