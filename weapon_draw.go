package main

import (
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const radiansToDegrees = 57.2958

// resolveSprite loads the weapon sprite the first time it is called. Images
// may only be created on the goroutine which runs the game, so this happens
// while drawing rather than while loading.
func (w *Weapon) resolveSprite() {
	if w.spriteResolved {
		return
	}
	w.spriteResolved = true

	sprite, err := w.loadSprite(w.config.spritePath)
	if err != nil {
		log.Printf("failed to load weapon sprite %s: %s", w.config.spritePath, err)
		return
	}
	w.sprite = sprite
}

// Draw draws the weapon held between the hand positions of its owner. Hand
// positions are screen coordinates, not world coordinates. The sprite is
// centered on the right hand.
func (w *Weapon) Draw(target *ebiten.Image, zoom, handLX, handLY, handRX, handRY float64) {
	w.resolveSprite()
	if w.sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = weaponGeoM(w.config.spriteRect, zoom, handLX, handLY, handRX, handRY, w.flipped)
	target.DrawImage(w.sprite.SubImage(w.config.spriteRect).(*ebiten.Image), op)
}

// weaponGeoM returns the transform of a sprite of size r: scaled by zoom,
// centered, rotated to point from the left hand to the right hand and moved
// to the right hand.
func weaponGeoM(r image.Rectangle, zoom, handLX, handLY, handRX, handRY float64, flipped bool) ebiten.GeoM {
	w, h := float64(r.Dx()), float64(r.Dy())

	var g ebiten.GeoM
	if flipped {
		g.Scale(-1, 1)
		g.Translate(w, 0)
	}
	g.Scale(zoom, zoom)
	g.Translate(-w/2*zoom, -h/2*zoom)
	g.Rotate(math.Atan2(handRY-handLY, handRX-handLX))
	g.Translate(handRX, handRY)
	return g
}

// weaponRotationDegrees returns the rotation applied to a weapon held between
// the provided hand positions.
func weaponRotationDegrees(handLX, handLY, handRX, handRY float64) float64 {
	return radiansToDegrees * math.Atan2(handRY-handLY, handRX-handLX)
}
