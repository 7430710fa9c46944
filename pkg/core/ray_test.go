package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if p := ray.At(0); p != ray.Origin {
		t.Errorf("Expected origin at t=0, got %v", p)
	}
	if p := ray.At(1.5); p != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0) at t=1.5, got %v", p)
	}
}

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(0.001, 10)

	tests := []struct {
		name      string
		x         float32
		contains  bool
		surrounds bool
	}{
		{"inside", 5, true, true},
		{"at min", 0.001, true, false},
		{"at max", 10, true, false},
		{"below", 0, false, false},
		{"above", 11, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.x); got != tt.contains {
				t.Errorf("Contains(%f) = %t, expected %t", tt.x, got, tt.contains)
			}
			if got := interval.Surrounds(tt.x); got != tt.surrounds {
				t.Errorf("Surrounds(%f) = %t, expected %t", tt.x, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Constants(t *testing.T) {
	if !UniverseInterval.Surrounds(1e30) || !UniverseInterval.Surrounds(-1e30) {
		t.Error("Universe interval should surround every finite value")
	}
	if !math32.IsInf(UniverseInterval.Size(), 1) {
		t.Errorf("Universe interval should have infinite size, got %f", UniverseInterval.Size())
	}
	if UniverseInterval.IsEmpty() {
		t.Error("Universe interval should not be empty")
	}

	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !EmptyInterval.IsEmpty() {
		t.Error("Empty interval should report empty")
	}
}

func TestInterval_ClampAndWithMax(t *testing.T) {
	interval := NewInterval(0, 0.999)

	if c := interval.Clamp(-1); c != 0 {
		t.Errorf("Expected 0, got %f", c)
	}
	if c := interval.Clamp(2); c != 0.999 {
		t.Errorf("Expected 0.999, got %f", c)
	}
	if c := interval.Clamp(0.5); c != 0.5 {
		t.Errorf("Expected 0.5, got %f", c)
	}

	narrowed := interval.WithMax(0.25)
	if narrowed.Min != 0 || narrowed.Max != 0.25 {
		t.Errorf("Unexpected narrowed interval %v", narrowed)
	}
}
