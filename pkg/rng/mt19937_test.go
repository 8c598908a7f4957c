package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		x := a.Intn(0, 1000)
		y := b.Intn(0, 1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 50; i++ {
		if a.Intn(0, 1<<30) != b.Intn(0, 1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Error("generators seeded differently produced identical sequences")
	}
}

func TestIntnWithinBounds(t *testing.T) {
	g := New(7)
	for i := 0; i < 10000; i++ {
		v := g.Intn(5, 9)
		if v < 5 || v >= 9 {
			t.Fatalf("Intn(5, 9) = %d, out of range", v)
		}
	}
}

func TestIntnSingleValueRange(t *testing.T) {
	g := New(7)
	for i := 0; i < 100; i++ {
		if v := g.Intn(3, 4); v != 3 {
			t.Fatalf("Intn(3, 4) = %d, want 3", v)
		}
	}
}

func TestIntnPanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Intn(5, 5) should panic on an empty range")
		}
	}()
	New(0).Intn(5, 5)
}

func TestSeedResetsSequence(t *testing.T) {
	g := New(99)
	first := make([]int, 20)
	for i := range first {
		first[i] = g.Intn(0, 1<<20)
	}
	g.Seed(99)
	for i := range first {
		if v := g.Intn(0, 1<<20); v != first[i] {
			t.Fatalf("after reseeding, draw %d = %d, want %d", i, v, first[i])
		}
	}
}

func TestDefaultIsSeedZero(t *testing.T) {
	a := Default()
	b := New(0)
	for i := 0; i < 20; i++ {
		if a.Intn(0, 1<<20) != b.Intn(0, 1<<20) {
			t.Fatal("Default() does not match New(0)")
		}
	}
}
