package bloomfilter

import "testing"

func TestBitSet_NoFalseNegatives(t *testing.T) {
	bs, err := NewBitSet(1000, 0.01, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kmers := [][]byte{[]byte("ACGTACGTACGTACG"), []byte("TTTTTTTTTTTTTTT"), []byte("GGGGCCCCAAAATTT")}
	for _, km := range kmers {
		bs.Add(km)
	}
	for _, km := range kmers {
		if !bs.Contains(km) {
			t.Fatalf("expected membership for %q (no false negatives allowed)", km)
		}
	}
}

func TestBitSet_ResourceCeiling(t *testing.T) {
	_, err := NewBitSet(1_000_000_000_000, 0.0000001, 1000)
	if err == nil {
		t.Fatal("expected a resource error when the sizing estimate exceeds the ceiling")
	}
}

func TestCounting_MinOfPositions(t *testing.T) {
	cf, err := NewCounting(1000, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	km := []byte("AAACCCGGGTTTAAA")
	for i := 0; i < 5; i++ {
		cf.Add(km)
	}
	if got := cf.Count(km); got < 5 {
		t.Fatalf("count() = %d, want >= 5", got)
	}
}

func TestCounting_Saturates(t *testing.T) {
	cf, err := NewCounting(10, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	km := []byte("ACGTACG")
	for i := 0; i < 300; i++ {
		cf.Add(km)
	}
	if got := cf.Count(km); got > 255 {
		t.Fatalf("counters must saturate at 255, got %d", got)
	}
}
