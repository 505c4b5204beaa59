package gf2m

import (
	"math/rand"
	"testing"
)

func TestFieldAxioms(t *testing.T) {
	f := GF16
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 2000; trial++ {
		a := Elem(rng.Intn(16))
		b := Elem(rng.Intn(16))
		c := Elem(rng.Intn(16))

		if f.Add(a, b) != f.Add(b, a) {
			t.Fatalf("addition not commutative: a=%d b=%d", a, b)
		}
		if f.Add(f.Add(a, b), c) != f.Add(a, f.Add(b, c)) {
			t.Fatalf("addition not associative")
		}
		if f.Add(a, a) != 0 {
			t.Fatalf("a+a != 0 for a=%d", a)
		}
		if f.Mul(a, b) != f.Mul(b, a) {
			t.Fatalf("multiplication not commutative: a=%d b=%d", a, b)
		}
		// distributivity: a*(b+c) == a*b + a*c
		lhs := f.Mul(a, f.Add(b, c))
		rhs := f.Add(f.Mul(a, b), f.Mul(a, c))
		if lhs != rhs {
			t.Fatalf("distributivity failed: a=%d b=%d c=%d lhs=%d rhs=%d", a, b, c, lhs, rhs)
		}
		if a != 0 {
			if f.Mul(a, f.Inv(a)) != 1 {
				t.Fatalf("a*a^-1 != 1 for a=%d", a)
			}
		}
	}
}

func TestInvZero(t *testing.T) {
	if GF16.Inv(0) != 0 {
		t.Fatalf("Inv(0) must be defined as 0")
	}
}

func TestMulIdentity(t *testing.T) {
	f := GF16
	for a := Elem(0); a < 16; a++ {
		if f.Mul(a, 1) != a {
			t.Fatalf("a*1 != a for a=%d", a)
		}
		if f.Mul(a, 0) != 0 {
			t.Fatalf("a*0 != 0 for a=%d", a)
		}
	}
}

func TestAllNonzeroInvertible(t *testing.T) {
	f := GF16
	seen := map[Elem]bool{}
	for a := Elem(1); a < 16; a++ {
		inv := f.Inv(a)
		if inv == 0 {
			t.Fatalf("nonzero element %d has zero inverse", a)
		}
		if seen[inv] {
			t.Fatalf("inverse map not injective: %d", a)
		}
		seen[inv] = true
	}
}
