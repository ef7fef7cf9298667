package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Players per sound, so rapid fire does not cut off the previous shot.
const soundPlayers = 4

const defaultVolume = 0.3

const soundCreepDie = "assets/audio/creepdie.wav"

var soundVolume = map[string]float64{
	"assets/audio/gunshot.wav": 0.2,
	"assets/audio/flame.wav":   0.1,
	soundCreepDie:              0.15,
}

// soundBank holds decoded sounds keyed by asset path.
type soundBank struct {
	context *audio.Context
	fsys    fs.FS

	players map[string][]*audio.Player
	next    map[string]int
}

func newSoundBank(context *audio.Context, fsys fs.FS) *soundBank {
	return &soundBank{
		context: context,
		fsys:    fsys,
		players: make(map[string][]*audio.Player),
		next:    make(map[string]int),
	}
}

func (b *soundBank) loadWav(p string) (*audio.Player, error) {
	buf, err := fs.ReadFile(b.fsys, p)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}

	return b.context.NewPlayer(stream)
}

func (b *soundBank) loadStream(p string) (*audio.Player, error) {
	stream, err := b.loadWav(p)
	if err != nil {
		return nil, err
	}

	// Workaround to prevent delays when playing for the first time.
	stream.SetVolume(0)
	stream.Play()
	stream.Pause()
	if err := stream.SetPosition(0); err != nil {
		return nil, err
	}

	volume, ok := soundVolume[p]
	if !ok {
		volume = defaultVolume
	}
	stream.SetVolume(volume)
	return stream, nil
}

// preload decodes the sound at p unless it is already loaded.
func (b *soundBank) preload(p string) error {
	if _, ok := b.players[p]; ok {
		return nil
	}

	players := make([]*audio.Player, soundPlayers)
	for i := range players {
		var err error
		players[i], err = b.loadStream(p)
		if err != nil {
			// Remember the failure so the sound is not decoded again.
			b.players[p] = nil
			return fmt.Errorf("failed to load sound %s: %w", p, err)
		}
	}
	b.players[p] = players
	return nil
}

// play plays the sound at p, loading it first when needed.
func (b *soundBank) play(p string) error {
	err := b.preload(p)
	if err != nil {
		return err
	}

	players := b.players[p]
	if len(players) == 0 {
		return nil
	}
	player := players[b.next[p]]
	b.next[p] = (b.next[p] + 1) % len(players)

	player.Pause()
	if err := player.SetPosition(0); err != nil {
		return err
	}
	player.Play()
	return nil
}

// preloadSound implements weaponOwner.
func (g *game) preloadSound(p string) {
	err := g.sounds.preload(p)
	if err != nil {
		log.Println(err)
	}
}

// playSound implements weaponOwner.
func (g *game) playSound(p string) {
	if g.muteAudio {
		return
	}
	err := g.sounds.play(p)
	if err != nil {
		log.Println(err)
	}
}

func (g *game) playEffect(p string) {
	if g.muteAudio {
		return
	}
	err := g.effects.play(p)
	if err != nil {
		log.Println(err)
	}
}
