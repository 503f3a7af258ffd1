package utils

import (
	"math"
	"testing"
)

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := s.Range(1, 30); v < 1 || v >= 31 {
			t.Fatalf("Range(1, 30) = %v, want [1, 31)", v)
		}
		if v := s.Centered(1.5); v < -0.75 || v >= 0.75 {
			t.Fatalf("Centered(1.5) = %v, want [-0.75, 0.75)", v)
		}
		if v := s.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) = %d", v)
		}
	}
}

func TestMathHelpers(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if v := Lerp(10, 20, 0.25); v != 12.5 {
		t.Errorf("Lerp = %v, want 12.5", v)
	}
	if v := Clamp(5, 0, 1); v != 1 {
		t.Errorf("Clamp = %v, want 1", v)
	}
	if IsFinite(1, math.NaN()) {
		t.Error("IsFinite accepted NaN")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("IsFinite accepted -Inf")
	}
	if !IsFinite(0, -3.5, 1e300) {
		t.Error("IsFinite rejected finite values")
	}
}
