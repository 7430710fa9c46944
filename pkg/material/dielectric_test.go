package material

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	for i := 0; i < 50; i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected white attenuation, got %v", result.Attenuation)
		}
	}
}

func TestDielectric_NormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	tests := []struct {
		name     string
		draw     float32
		expected core.Vec3
	}{
		// Schlick reflectance at normal incidence is 0.04
		{"refracts when draw exceeds reflectance", 0.99, core.NewVec3(0, -1, 0)},
		{"reflects when draw is below reflectance", 0.0, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := glass.Scatter(ray, hit, core.NewSequenceSampler(tt.draw))
			if !vecAlmostEqual(result.Scattered.Direction, tt.expected, 1e-6) {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray travelling inside the glass at a shallow angle to the surface
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math32.Sqrt(1.0 - cosTheta*cosTheta)
	if glass.RefractiveIndex*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for seed := int64(0); seed < 10; seed++ {
		result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %v", result.Scattered.Direction)
		}
		if math32.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-6 {
			t.Errorf("Expected X component %f, got %f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestDielectric_FresnelReflectionFrequency(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	const n = 20000
	reflections := 0
	for i := 0; i < n; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		}
	}

	fraction := float32(reflections) / n
	if math32.Abs(fraction-0.04) > 0.01 {
		t.Errorf("Expected about 4%% reflections at normal incidence, got %.3f", fraction)
	}
}

func TestReflectance(t *testing.T) {
	r0 := Reflectance(1.0, 1.0/1.5)
	if math32.Abs(r0-0.04) > 1e-5 {
		t.Errorf("Normal incidence reflectance = %.4f, expected 0.04", r0)
	}

	if inverse := Reflectance(1.0, 1.5); math32.Abs(inverse-r0) > 1e-6 {
		t.Errorf("Reflectance should not depend on ratio direction: %f vs %f", inverse, r0)
	}

	if r90 := Reflectance(0.0, 1.0/1.5); math32.Abs(r90-1) > 1e-6 {
		t.Errorf("Grazing incidence reflectance = %.4f, expected 1", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r45 >= 1 {
		t.Errorf("Reflectance should increase with angle: R(0)=%.3f, R(45)=%.3f", r0, r45)
	}
}
