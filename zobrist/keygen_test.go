package zobrist

import (
	"errors"
	"testing"
)

func TestSeedIsNonZero(t *testing.T) {
	if Seed == 0 {
		t.Fatal("compiled-in seed is zero; every key would be zero")
	}
}

func TestGeneratorGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		seed Key
		want []Key
	}{
		// Published xorshift32 sequence for seed 1.
		{"seed 1", 1, []Key{0x00042021, 0x04080601, 0x9dcca8c5, 0x1255994f}},
		{"compiled-in seed", Seed, []Key{0x729fab0e, 0x783b36d1, 0xc2c22d81, 0x693b8938, 0x1b8c23f6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := MustGenerator(tc.seed)
			for i, want := range tc.want {
				if got := g.Next(); got != want {
					t.Fatalf("value %d: expected %#08x, got %#08x", i, want, got)
				}
			}
		})
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := MustGenerator(Seed).Take(KeyCount)
	b := MustGenerator(Seed).Take(KeyCount)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs between runs: %#08x vs %#08x", i, a[i], b[i])
		}
	}
}

func TestGeneratorRestartMatchesPrefix(t *testing.T) {
	g := MustGenerator(Seed)
	prefix := g.Take(10)
	rest := g.Take(5)

	full := MustGenerator(Seed).Take(15)
	for i := 0; i < 10; i++ {
		if prefix[i] != full[i] {
			t.Fatalf("prefix value %d: %#08x vs %#08x", i, prefix[i], full[i])
		}
	}
	for i := 0; i < 5; i++ {
		if rest[i] != full[10+i] {
			t.Fatalf("continued value %d: %#08x vs %#08x", i, rest[i], full[10+i])
		}
	}
}

func TestGeneratorNeverEmitsZero(t *testing.T) {
	g := MustGenerator(Seed)
	for i := 0; i < 1<<16; i++ {
		if g.Next() == 0 {
			t.Fatalf("generator reached zero state after %d steps", i+1)
		}
	}
}

func TestZeroSeedRejected(t *testing.T) {
	g, err := NewGenerator(0)
	if !errors.Is(err, ErrZeroSeed) {
		t.Fatalf("expected ErrZeroSeed, got %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil generator for zero seed")
	}

	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrZeroSeed) {
			t.Fatalf("expected panic with ErrZeroSeed, got %v", r)
		}
	}()
	MustGenerator(0)
}

func TestTakeNegativeCountPanics(t *testing.T) {
	g := MustGenerator(Seed)
	if got := g.Take(0); len(got) != 0 {
		t.Fatalf("Take(0): expected no values, got %d", len(got))
	}

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic for negative count")
			}
		}()
		g.Take(-1)
	}()

	// The failed call must not advance the stream.
	if got := g.Next(); got != 0x729fab0e {
		t.Fatalf("expected first draw 0x729fab0e after rejected Take, got %#08x", got)
	}
}
