package params

import (
	"fhecore/fp"
	"testing"
)

func TestBuildPowG(t *testing.T) {
	g := fp.FromUint64(3)
	table := BuildPowG(g, 5)
	if len(table) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(table))
	}
	if !table[0].Equal(fp.One()) {
		t.Fatal("g^0 should be 1")
	}
	want := fp.One()
	for i := 0; i < 5; i++ {
		if !table[i].Equal(want) {
			t.Fatalf("powg[%d] mismatch", i)
		}
		want = want.Mul(g)
	}
}

func TestLoadPrmFromFileMissing(t *testing.T) {
	if _, err := LoadPrmFromFile("does/not/exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
