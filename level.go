package main

import (
	"errors"
	"image"
	"math"
	"math/rand"

	"github.com/Meshiest/go-dungeon/dungeon"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	levelSize  = 64
	levelRooms = 40
)

// Tile represents a space with an x,y coordinate within a Level. Any number of
// sprites may be drawn at a Tile.
type Tile struct {
	sprites []*ebiten.Image
	floor   bool
}

// AddSprite adds a sprite to the Tile.
func (t *Tile) AddSprite(s *ebiten.Image) {
	t.sprites = append(t.sprites, s)
}

// Level represents a game level.
type Level struct {
	w, h int

	tiles    [][]*Tile // (Y,X) array of tiles
	tileSize int

	floors []image.Point
}

// Tile returns the tile at the provided coordinates, or nil.
func (l *Level) Tile(x, y int) *Tile {
	if x >= 0 && y >= 0 && x < l.w && y < l.h {
		return l.tiles[y][x]
	}
	return nil
}

// Size returns the size of the Level.
func (l *Level) Size() (width, height int) {
	return l.w, l.h
}

// isFloor reports whether the world position x, y is walkable.
func (l *Level) isFloor(x, y float64) bool {
	ts := float64(l.tileSize)
	t := l.Tile(int(math.Floor(x/ts)), int(math.Floor(y/ts)))
	return t != nil && t.floor
}

// newSpawnLocation returns the world position of the center of a random
// floor tile.
func (l *Level) newSpawnLocation() (float64, float64) {
	p := l.floors[rand.Intn(len(l.floors))]
	ts := float64(l.tileSize)
	return (float64(p.X) + 0.5) * ts, (float64(p.Y) + 0.5) * ts
}

// newLevelFromGrid builds a Level from a grid of tiles where non-zero values
// are floor.
func newLevelFromGrid(grid [][]int, tileSize int, floor, wall *ebiten.Image) (*Level, error) {
	l := &Level{
		w:        len(grid),
		h:        len(grid),
		tileSize: tileSize,
	}

	l.tiles = make([][]*Tile, l.h)
	for y := 0; y < l.h; y++ {
		l.tiles[y] = make([]*Tile, l.w)
		for x := 0; x < l.w; x++ {
			t := &Tile{}
			if y < len(grid[x]) && grid[x][y] != 0 {
				t.floor = true
				t.AddSprite(floor)
				l.floors = append(l.floors, image.Pt(x, y))
			} else {
				t.AddSprite(wall)
			}
			l.tiles[y][x] = t
		}
	}

	if len(l.floors) == 0 {
		return nil, errors.New("level has no floor")
	}
	return l, nil
}

// NewLevel returns a new randomly generated Level.
func NewLevel() (*Level, error) {
	d := dungeon.NewDungeon(levelSize, levelRooms)
	return newLevelFromGrid(d.Grid, 32, arenaSS.Floor, arenaSS.Wall)
}

func angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y1-y2, x1-x2)
}
