package main

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ImageVampire = iota
	ImageAmmoCrate
)

var imageMap = map[int]string{
	ImageVampire:   "assets/creeps/vampire.png",
	ImageAmmoCrate: "assets/weapons/ammo.png",
}

var imageAtlas []*ebiten.Image

// loadImage decodes the image at p and registers it with ebiten.
func loadImage(fsys fs.FS, p string) (*ebiten.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadAtlas(fsys fs.FS) ([]*ebiten.Image, error) {
	atlas := make([]*ebiten.Image, len(imageMap))
	var err error
	for imgID, imgPath := range imageMap {
		atlas[imgID], err = loadImage(fsys, imgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", imgPath, err)
		}
	}
	return atlas, nil
}
