// Package gf2m implements dense linear algebra over small binary extension
// fields GF(2^m), the arithmetic substrate of the MinRank relation checked
// throughout package mirath. It has no third-party dependency: spec.md's
// design notes are explicit that general numeric libraries (the teacher
// repo leans on github.com/tuneinsight/lattigo/v4 for its polynomial
// rings) do not implement GF(2^m), so this package supplies its own.
package gf2m

import "fmt"

// Elem is a single residue in GF(2^m). Only the low m bits are significant;
// all constructors and operations in this package return normalized values.
type Elem uint16

// Field describes GF(2^m) as F_2[X]/(poly), poly a monic irreducible
// polynomial of degree m encoded as a bitmask (bit i set iff X^i has
// coefficient 1; the degree-m leading term is implicit).
type Field struct {
	M    int
	Poly uint32 // low m bits: the reduction polynomial minus its leading X^m term
}

// New validates and returns a field descriptor. poly must encode the low m
// coefficients of a degree-m monic irreducible polynomial (bit m itself is
// never set here; it is implied).
func New(m int, poly uint32) (*Field, error) {
	if m <= 0 || m > 16 {
		return nil, fmt.Errorf("gf2m: m=%d out of supported range [1,16]", m)
	}
	if poly>>uint(m) != 0 {
		return nil, fmt.Errorf("gf2m: poly has bits at or above degree m=%d", m)
	}
	return &Field{M: m, Poly: poly}, nil
}

// GF16 is the fixed field used by params_tag 0x01: GF(2^4) reduced modulo
// X^4+X+1 (the standard degree-4 binary irreducible used by e.g. AES-adjacent
// nibble fields).
var GF16 = &Field{M: 4, Poly: 0b0011}

// Zero returns the additive identity.
func (f *Field) Zero() Elem { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Elem { return 1 }

// mask returns the bitmask selecting the low m bits.
func (f *Field) mask() uint32 { return (uint32(1) << uint(f.M)) - 1 }

// Normalize reduces e to its low-m-bit representative.
func (f *Field) Normalize(e Elem) Elem { return Elem(uint32(e) & f.mask()) }

// Add returns a+b (XOR; addition and subtraction coincide in characteristic 2).
func (f *Field) Add(a, b Elem) Elem { return Elem(uint32(a)^uint32(b)) & Elem(f.mask()) }

// Sub is an alias for Add: GF(2^m) has characteristic 2.
func (f *Field) Sub(a, b Elem) Elem { return f.Add(a, b) }

// Mul returns a*b via carryless multiplication modulo the field's reduction
// polynomial. The loop count is fixed at f.M iterations regardless of
// operand value, so the routine takes no data-dependent branches on secret
// field elements (spec.md §4.A's constant-time requirement).
func (f *Field) Mul(a, b Elem) Elem {
	aw := uint32(a) & f.mask()
	bw := uint32(b) & f.mask()
	var prod uint32
	for i := 0; i < f.M; i++ {
		bit := (bw >> uint(i)) & 1
		// Constant-structure select: always compute the shifted term, mask
		// it to zero when the bit is clear instead of branching on it.
		term := (aw << uint(i))
		sel := -bit // all ones when bit is 1, zero otherwise
		prod ^= term & sel
	}
	return Elem(f.reduce(prod))
}

// reduce folds a 2m-1 bit product down to m bits modulo the field polynomial.
func (f *Field) reduce(prod uint32) uint32 {
	for deg := 2*f.M - 2; deg >= f.M; deg-- {
		bit := (prod >> uint(deg)) & 1
		sel := -bit // all ones when bit is 1, zero otherwise
		reducer := (f.Poly | (uint32(1) << uint(f.M))) << uint(deg-f.M)
		prod ^= reducer & sel
	}
	return prod & f.mask()
}

// Square returns a*a.
func (f *Field) Square(a Elem) Elem { return f.Mul(a, a) }

// Pow returns base^exp via fixed-width square-and-multiply over all 32 bits
// of exp (exp is a public exponent — only used to compute inverses, which
// this package always does with the fixed exponent 2^m-2).
func (f *Field) Pow(base Elem, exp uint32) Elem {
	result := f.One()
	cur := f.Normalize(base)
	for i := 31; i >= 0; i-- {
		result = f.Square(result)
		if (exp>>uint(i))&1 == 1 {
			result = f.Mul(result, cur)
		}
	}
	return result
}

// Inv returns a^-1. Per spec.md §4.A this is total: Inv(0) is defined to be
// 0, and callers (the MinRank and protocol layers) must never feed it a
// secret zero operand — that invariant is enforced upstream, not here.
// Zero needs no special case: 0^(2^m-2) is already 0.
func (f *Field) Inv(a Elem) Elem {
	an := f.Normalize(a)
	exp := (uint32(1) << uint(f.M)) - 2
	return f.Pow(an, exp)
}

// Div returns a/b = a * b^-1.
func (f *Field) Div(a, b Elem) Elem { return f.Mul(a, f.Inv(b)) }

// IsZero reports whether e normalizes to zero.
func (f *Field) IsZero(e Elem) bool { return f.Normalize(e) == 0 }

// Equal reports whether a and b normalize to the same element.
func (f *Field) Equal(a, b Elem) bool { return f.Normalize(a) == f.Normalize(b) }
