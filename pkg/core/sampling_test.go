package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestRandomInUnitSphere_RejectsOutsidePoints(t *testing.T) {
	// First draw maps to (1,1,1)-ish and must be rejected, second to (0,-0.5,0)
	sampler := NewSequenceSampler(0.99, 0.99, 0.99, 0.5, 0.25, 0.5)

	p := RandomInUnitSphere(sampler)
	if p != NewVec3(0, -0.5, 0) {
		t.Errorf("Expected (0,-0.5,0) after rejection, got %v", p)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)

	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math32.Abs(v.Length()-1) > tolerance {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
		sum = sum.Add(v)
	}

	// Uniform directions average out to roughly zero
	mean := sum.Divide(n)
	if mean.Length() > 0.05 {
		t.Errorf("Mean direction %v is biased", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie on z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Disk sample %v lies outside the unit disk", p)
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestSequenceSampler(t *testing.T) {
	sampler := NewSequenceSampler(0.1, 0.2, 0.3)

	if v := sampler.Get3D(); v != NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Expected (0.1,0.2,0.3), got %v", v)
	}
	// Wraps around
	if v := sampler.Get2D(); v != NewVec2(0.1, 0.2) {
		t.Errorf("Expected (0.1,0.2), got %v", v)
	}
	if v := sampler.Get1D(); v != 0.3 {
		t.Errorf("Expected 0.3, got %f", v)
	}
}

func TestSequenceSampler_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for an empty sequence")
		}
	}()
	NewSequenceSampler()
}
