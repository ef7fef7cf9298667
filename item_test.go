package main

import (
	"testing"
	"time"
)

func TestAmmoCrate(t *testing.T) {
	tests := []struct {
		maxAmmo, ammo, expected int
	}{
		{10, 0, 5},
		{3, 0, 2},
		{10, 8, 10},
		{0, 0, 0},
	}

	for _, tt := range tests {
		w := &Weapon{config: weaponConfig{maxAmmo: tt.maxAmmo}, ammo: tt.ammo}
		item := &gameItem{itemType: itemTypeAmmo, health: 1}
		item.use(NewPlayer([]*Weapon{w}))

		if w.Ammo() != tt.expected {
			t.Errorf("%d/%d: Expected ammo %d, got %d", tt.ammo, tt.maxAmmo, tt.expected, w.Ammo())
		}
		if item.health != 0 {
			t.Error("Expected item to be used up")
		}
	}

	item := &gameItem{itemType: itemTypeAmmo, health: 1}
	item.use(NewPlayer(nil))
}

func TestVibrationDuration(t *testing.T) {
	tests := []struct {
		intensity int
		expected  time.Duration
	}{
		{0, 0},
		{-5, 0},
		{15, 15 * time.Millisecond},
		{250, 250 * time.Millisecond},
		{1000, 250 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := vibrationDuration(tt.intensity); got != tt.expected {
			t.Errorf("%d: Expected %s, got %s", tt.intensity, tt.expected, got)
		}
	}
}
