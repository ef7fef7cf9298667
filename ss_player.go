package main

import (
	"embed"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

var playerSS *PlayerSpriteSheet

// PlayerSpriteSheet represents a collection of sprite images.
type PlayerSpriteSheet struct {
	Frame1 *ebiten.Image // Facing right.
	Frame2 *ebiten.Image // Facing left.
}

//go:embed assets
var assetsFS embed.FS

// LoadPlayerSpriteSheet loads the PlayerSpriteSheet from fsys.
func LoadPlayerSpriteSheet(fsys fs.FS) (*PlayerSpriteSheet, error) {
	tileSize := 32

	sheet, err := loadImage(fsys, "assets/player/player.png")
	if err != nil {
		return nil, err
	}

	// spriteAt returns a sprite at the provided coordinates.
	spriteAt := func(x, y int) *ebiten.Image {
		return sheet.SubImage(image.Rect(x*tileSize, (y+1)*tileSize, (x+1)*tileSize, y*tileSize)).(*ebiten.Image)
	}

	s := &PlayerSpriteSheet{}
	s.Frame1 = spriteAt(0, 0)
	s.Frame2 = spriteAt(0, 1)

	return s, nil
}
