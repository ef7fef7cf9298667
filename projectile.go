package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	flameLifetime = 0.6  // Seconds.
	flameDamping  = 0.95 // Velocity kept per tick at 144 TPS.
	flameRadius   = 3.0
	flameGrowth   = 18.0 // Radius gained per second.

	projectileHitRadius = 10.0
)

type projectile struct {
	entity

	damage float64

	// Remaining and initial lifetime in seconds.
	life, maxLife float64

	// Sub image of the weapon sprite. Flame projectiles have no sprite.
	sprite *ebiten.Image
	flame  bool

	// Creeps only take damage once from each flame particle.
	hit map[*gameCreep]bool
}

func newProjectile(x, y, dx, dy, timeout, damage float64, sprite *ebiten.Image, rect image.Rectangle, flipped bool) *projectile {
	p := &projectile{
		entity:  entity{x: x, y: y, dx: dx, dy: dy, flipped: flipped},
		damage:  damage,
		life:    timeout,
		maxLife: timeout,
	}
	if sprite != nil {
		p.sprite = sprite.SubImage(rect).(*ebiten.Image)
	}
	return p
}

func newFireProjectile(x, y, dx, dy, damage float64, flipped bool) *projectile {
	return &projectile{
		entity:  entity{x: x, y: y, dx: dx, dy: dy, flipped: flipped},
		damage:  damage,
		life:    flameLifetime,
		maxLife: flameLifetime,
		flame:   true,
		hit:     make(map[*gameCreep]bool),
	}
}

// update advances the projectile by dt seconds and reports whether it is
// still alive.
func (p *projectile) update(dt float64) bool {
	p.step(dt)
	if p.flame {
		damping := math.Pow(flameDamping, dt*144)
		p.dx, p.dy = p.dx*damping, p.dy*damping
	}
	p.life -= dt
	return p.life > 0
}

// angle returns the direction of travel.
func (p *projectile) angle() float64 {
	return math.Atan2(p.dy, p.dx)
}

// radius returns the size of a flame particle.
func (p *projectile) radius() float64 {
	return flameRadius + flameGrowth*(p.maxLife-p.life)
}

// alpha returns the opacity of a flame particle, fading out cubically.
func (p *projectile) alpha() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	v := p.life / p.maxLife
	if v < 0 {
		v = 0
	}
	return v * v * v
}

// hits reports whether the projectile touches a point.
func (p *projectile) hits(x, y float64) bool {
	r := projectileHitRadius
	if p.flame {
		r = p.radius()
	}
	dx, dy := deltaXY(p.x, p.y, x, y)
	return dx*dx+dy*dy <= r*r
}
