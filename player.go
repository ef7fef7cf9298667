package main

import (
	"math"
)

const (
	// Hand positions relative to the center of the player sprite, in pixels.
	handOffsetY = 6.0
	handReach   = 10.0
)

type gamePlayer struct {
	entity

	angle float64

	weapons []*Weapon
	current int

	score int
}

func NewPlayer(weapons []*Weapon) *gamePlayer {
	return &gamePlayer{
		weapons: weapons,
	}
}

// weapon returns the held weapon, or nil.
func (p *gamePlayer) weapon() *Weapon {
	if len(p.weapons) == 0 {
		return nil
	}
	return p.weapons[p.current]
}

// nextWeapon switches to the next weapon. The previously held weapon stops
// shooting.
func (p *gamePlayer) nextWeapon() *Weapon {
	if len(p.weapons) == 0 {
		return nil
	}
	p.weapons[p.current].EnableShooting(false)
	p.current = (p.current + 1) % len(p.weapons)
	return p.weapons[p.current]
}

// aimingLeft reports whether the player faces left.
func (p *gamePlayer) aimingLeft() bool {
	return p.angle > math.Pi/2 || p.angle < -1*math.Pi/2
}

// hands returns the screen positions of the left and right hand of a player
// drawn at sx, sy and aiming at angle. When aiming left the hands swap sides
// and the weapon is mirrored, which keeps the weapon sprite upright.
func hands(sx, sy, zoom, angle float64) (lx, ly, rx, ry float64, flipped bool) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	reach := handReach * zoom

	shoulderX, shoulderY := sx, sy+handOffsetY*zoom
	gripX, gripY := shoulderX+cos*reach, shoulderY+sin*reach
	if angle > math.Pi/2 || angle < -1*math.Pi/2 {
		return gripX + cos*reach, gripY + sin*reach, gripX, gripY, true
	}
	return shoulderX, shoulderY, gripX, gripY, false
}
