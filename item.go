package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	itemTypeAmmo = iota
)

// Fraction of the capacity of the held weapon restored by an ammo crate.
const ammoCrateRefill = 0.5

type gameItem struct {
	x, y float64

	sprite *ebiten.Image

	itemType int

	health int
}

// use applies the item to the player.
func (item *gameItem) use(p *gamePlayer) {
	switch item.itemType {
	case itemTypeAmmo:
		w := p.weapon()
		if w == nil {
			return
		}
		w.Refill(int(float64(w.MaxAmmo())*ammoCrateRefill + 0.5))
	}
	item.health = 0
}
