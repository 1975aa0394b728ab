package vmath

import (
	"math"
	"testing"
)

// TestNormalize2DZeroVector verifies the zero vector does not divide by zero
func TestNormalize2DZeroVector(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected (0,0), got (%f,%f)", nx, ny)
	}
	if math.IsNaN(nx) || math.IsNaN(ny) {
		t.Error("Normalize2D produced NaN")
	}
}

// TestNormalize2DDiagonal verifies unit length on diagonals
func TestNormalize2DDiagonal(t *testing.T) {
	nx, ny := Normalize2D(1, -1)
	if got := Magnitude(nx, ny); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", got)
	}
	if nx <= 0 || ny >= 0 {
		t.Errorf("Direction lost: (%f,%f)", nx, ny)
	}
}

func TestApproachDoesNotOvershoot(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"down large step", 10, 4, 100, 4},
		{"down small step", 10, 4, 2, 8},
		{"up small step", 4, 10, 2, 6},
		{"at target", 5, 5, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.current, tt.target, tt.step); got != tt.want {
				t.Errorf("Approach(%v,%v,%v) = %v, want %v", tt.current, tt.target, tt.step, got, tt.want)
			}
		})
	}
}

// TestClamp verifies bounds, including the collapsed range
func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Expected 10, got %f", got)
	}
	if got := Clamp(3, 0, -1); got != 0 {
		t.Errorf("Collapsed range should return lo, got %f", got)
	}
}

// TestCircleHitsRect verifies the inflated AABB edges are exclusive
func TestCircleHitsRect(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 32, Height: 32}

	if !CircleHitsRect(97, 110, 5, r) {
		t.Error("Point within radius margin on the left should hit")
	}
	if CircleHitsRect(95, 110, 5, r) {
		t.Error("Point exactly at inflated edge should not hit")
	}
	if !CircleHitsRect(116, 116, 5, r) {
		t.Error("Center point should hit")
	}
	if CircleHitsRect(116, 140, 5, r) {
		t.Error("Point below inflated box should not hit")
	}
}

// TestFastRandDeterminism verifies identical seeds produce identical streams
func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		fa, fb := a.Float64(), b.Float64()
		if fa != fb {
			t.Fatalf("Streams diverged at %d: %f != %f", i, fa, fb)
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("Float64 out of range: %f", fa)
		}
	}
	if NewFastRand(0).Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
