package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	creepHealth = 3.0
	creepSpeed  = 24.0 // Pixels per second.
)

type gameCreep struct {
	entity
	sprite *ebiten.Image

	level *Level

	health float64

	tick       int
	nextAction int
}

func newCreep(l *Level, sprite *ebiten.Image) *gameCreep {
	c := &gameCreep{
		sprite: sprite,
		level:  l,
		health: creepHealth,
	}
	c.x, c.y = l.newSpawnLocation()
	c.doNextAction()
	return c
}

func (c *gameCreep) doNextAction() {
	c.dx = (rand.Float64() - 0.5) * 2 * creepSpeed
	c.dy = (rand.Float64() - 0.5) * 2 * creepSpeed
	c.flipped = c.dx < 0

	c.nextAction = 400 + rand.Intn(1000)
}

// Update moves the creep, turning around when it would leave the floor.
func (c *gameCreep) Update(dt float64) {
	c.tick++
	if c.tick >= c.nextAction {
		c.doNextAction()
		c.tick = 0
	}

	x, y := c.x, c.y
	c.step(dt)
	if !c.level.isFloor(c.x, c.y) {
		c.x, c.y = x, y
		c.doNextAction()
	}
}

// hurt applies damage and reports whether the creep was killed by it.
func (c *gameCreep) hurt(damage float64) bool {
	if c.health <= 0 {
		return false
	}
	c.health -= damage
	return c.health <= 0
}
