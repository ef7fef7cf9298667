package main

import (
	"testing"
)

func testGrid() [][]int {
	return [][]int{
		{0, 0, 0},
		{0, 1, 1},
		{0, 0, 0},
	}
}

func TestNewLevelFromGrid(t *testing.T) {
	l, err := newLevelFromGrid(testGrid(), 32, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	w, h := l.Size()
	if w != 3 || h != 3 {
		t.Errorf("Expected size 3x3, got %dx%d", w, h)
	}
	if len(l.floors) != 2 {
		t.Errorf("Expected 2 floor tiles, got %d", len(l.floors))
	}
	if l.Tile(3, 0) != nil || l.Tile(-1, 0) != nil {
		t.Error("Expected no tiles outside the level")
	}
	if tile := l.Tile(1, 1); tile == nil || !tile.floor || len(tile.sprites) != 1 {
		t.Error("Expected floor tile at 1,1")
	}

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{48, 48, true},
		{48, 80, true},
		{32, 32, true},
		{31.9, 48, false},
		{80, 48, false},
		{-1, 48, false},
		{48, 200, false},
	}
	for _, tt := range tests {
		if got := l.isFloor(tt.x, tt.y); got != tt.expected {
			t.Errorf("(%f, %f): Expected floor %t, got %t", tt.x, tt.y, tt.expected, got)
		}
	}

	for i := 0; i < 20; i++ {
		x, y := l.newSpawnLocation()
		if x != 48 || (y != 48 && y != 80) {
			t.Fatalf("Expected spawn at the center of a floor tile, got (%f, %f)", x, y)
		}
	}
}

func TestNewLevelFromGridNoFloor(t *testing.T) {
	_, err := newLevelFromGrid([][]int{{0, 0}, {0, 0}}, 32, nil, nil)
	if err == nil {
		t.Error("Expected error")
	}
}

func TestCreepStaysOnFloor(t *testing.T) {
	l, err := newLevelFromGrid(testGrid(), 32, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	c := newCreep(l, nil)
	for i := 0; i < 5000; i++ {
		c.Update(1.0 / 144)
		if !l.isFloor(c.x, c.y) {
			t.Fatalf("Expected creep on the floor, got (%f, %f)", c.x, c.y)
		}
	}
}

func TestCreepHurt(t *testing.T) {
	c := &gameCreep{health: creepHealth}
	if c.hurt(1) {
		t.Error("Expected creep to survive")
	}
	if !c.hurt(2) {
		t.Error("Expected creep to be killed")
	}
	if c.hurt(1) {
		t.Error("Expected a dead creep not to be killed again")
	}
}
