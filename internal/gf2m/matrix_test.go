package gf2m

import (
	"math/rand"
	"testing"
)

func randMatrix(f *Field, rng *rand.Rand, rows, cols int) *Matrix {
	m := NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, Elem(rng.Intn(1<<uint(f.M))))
		}
	}
	return m
}

func identity(f *Field, n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, f.One())
	}
	return m
}

func TestMatrixMulIdentity(t *testing.T) {
	f := GF16
	rng := rand.New(rand.NewSource(2))
	a := randMatrix(f, rng, 4, 5)
	id := identity(f, 5)
	prod, err := Mul(f, a, id)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(f, a, prod) {
		t.Fatalf("A*I != A")
	}
}

func TestRankIdentity(t *testing.T) {
	f := GF16
	id := identity(f, 6)
	if r := Rank(f, id); r != 6 {
		t.Fatalf("rank(I_6) = %d, want 6", r)
	}
}

func TestRankZeroMatrix(t *testing.T) {
	f := GF16
	m := NewMatrix(4, 4)
	if r := Rank(f, m); r != 0 {
		t.Fatalf("rank(0) = %d, want 0", r)
	}
}

func TestRankLowRankConstruction(t *testing.T) {
	f := GF16
	rng := rand.New(rand.NewSource(3))
	n, r := 8, 3
	s := randMatrix(f, rng, n, r)
	c := randMatrix(f, rng, r, n)
	e, err := Mul(f, s, c)
	if err != nil {
		t.Fatal(err)
	}
	if got := Rank(f, e); got > r {
		t.Fatalf("rank(S*C) = %d, want <= %d", got, r)
	}
}

func TestSolveRoundTrip(t *testing.T) {
	f := GF16
	rng := rand.New(rand.NewSource(4))
	n := 5
	for trial := 0; trial < 20; trial++ {
		a := randMatrix(f, rng, n, n)
		if Rank(f, a) != n {
			continue
		}
		x := make([]Elem, n)
		for i := range x {
			x[i] = Elem(rng.Intn(16))
		}
		xm := NewMatrix(n, 1)
		for i := range x {
			xm.Set(i, 0, x[i])
		}
		bm, err := Mul(f, a, xm)
		if err != nil {
			t.Fatal(err)
		}
		b := make([]Elem, n)
		for i := 0; i < n; i++ {
			b[i] = bm.At(i, 0)
		}
		got, err := Solve(f, a, b)
		if err != nil {
			t.Fatalf("Solve failed on full-rank system: %v", err)
		}
		for i := range x {
			if got[i] != x[i] {
				t.Fatalf("Solve mismatch at %d: got %d want %d", i, got[i], x[i])
			}
		}
		return
	}
	t.Fatal("no full-rank matrix found in 20 trials")
}
