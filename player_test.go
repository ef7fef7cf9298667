package main

import (
	"math"
	"testing"
)

func TestHands(t *testing.T) {
	lx, ly, rx, ry, flipped := hands(100, 100, 2, 0)
	if flipped {
		t.Error("Expected unflipped weapon when aiming right")
	}
	if !almostEqual(lx, 100) || !almostEqual(ly, 112) || !almostEqual(rx, 120) || !almostEqual(ry, 112) {
		t.Errorf("Expected hands (100, 112) (120, 112), got (%f, %f) (%f, %f)", lx, ly, rx, ry)
	}

	lx, ly, rx, ry, flipped = hands(100, 100, 2, math.Pi)
	if !flipped {
		t.Error("Expected flipped weapon when aiming left")
	}
	if !almostEqual(lx, 60) || !almostEqual(ly, 112) || !almostEqual(rx, 80) || !almostEqual(ry, 112) {
		t.Errorf("Expected hands (60, 112) (80, 112), got (%f, %f) (%f, %f)", lx, ly, rx, ry)
	}

	// Upright and mirrored rather than upside down.
	if r := weaponRotationDegrees(lx, ly, rx, ry); math.Abs(r) > 0.001 {
		t.Errorf("Expected no rotation, got %f", r)
	}
}

func TestNextWeapon(t *testing.T) {
	p := NewPlayer(nil)
	if p.weapon() != nil || p.nextWeapon() != nil {
		t.Fatal("Expected no weapon")
	}

	a, b := &Weapon{}, &Weapon{}
	p = NewPlayer([]*Weapon{a, b})
	a.EnableShooting(true)

	if p.weapon() != a {
		t.Fatal("Expected first weapon")
	}
	if p.nextWeapon() != b || p.weapon() != b {
		t.Fatal("Expected second weapon")
	}
	if a.Shooting() {
		t.Error("Expected previous weapon to stop shooting")
	}
	if p.nextWeapon() != a {
		t.Error("Expected weapons to cycle")
	}
}

func TestAimingLeft(t *testing.T) {
	p := NewPlayer(nil)
	for _, a := range []float64{0, 1, -1, math.Pi / 2} {
		p.angle = a
		if p.aimingLeft() {
			t.Errorf("Expected aiming right at %f", a)
		}
	}
	for _, a := range []float64{math.Pi, 2, -2} {
		p.angle = a
		if !p.aimingLeft() {
			t.Errorf("Expected aiming left at %f", a)
		}
	}
}
