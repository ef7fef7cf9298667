package main

// entity holds the position and motion shared by everything in the arena.
// Coordinates are world pixels, velocities are pixels per second.
type entity struct {
	x, y   float64
	dx, dy float64

	flipped bool // Mirror the sprite horizontally.
}

// step advances the entity by dt seconds.
func (e *entity) step(dt float64) {
	e.x += e.dx * dt
	e.y += e.dy * dt
}

// Position returns the position of the entity.
func (e *entity) Position() (float64, float64) {
	return e.x, e.y
}

// SetPosition moves the entity.
func (e *entity) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

// SetVelocity sets the velocity of the entity.
func (e *entity) SetVelocity(dx, dy float64) {
	e.dx, e.dy = dx, dy
}

// SetFlipped sets whether the entity is drawn mirrored horizontally.
func (e *entity) SetFlipped(flipped bool) {
	e.flipped = flipped
}
