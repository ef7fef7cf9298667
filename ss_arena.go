package main

import (
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

var arenaSS *ArenaSpriteSheet

// ArenaSpriteSheet represents the tiles of the arena.
type ArenaSpriteSheet struct {
	Floor *ebiten.Image
	Wall  *ebiten.Image
}

// LoadArenaSpriteSheet loads the ArenaSpriteSheet from fsys.
func LoadArenaSpriteSheet(fsys fs.FS) (*ArenaSpriteSheet, error) {
	tileSize := 32

	sheet, err := loadImage(fsys, "assets/arena/tiles.png")
	if err != nil {
		return nil, err
	}

	// spriteAt returns a sprite at the provided coordinates.
	spriteAt := func(x, y int) *ebiten.Image {
		return sheet.SubImage(image.Rect(x*tileSize, (y+1)*tileSize, (x+1)*tileSize, y*tileSize)).(*ebiten.Image)
	}

	s := &ArenaSpriteSheet{}
	s.Floor = spriteAt(0, 0)
	s.Wall = spriteAt(1, 0)

	return s, nil
}
