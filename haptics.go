package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	vibrateMagnitude        = 1.0
	gamepadStrongMagnitude  = 0.6
	gamepadWeakMagnitude    = 0.3
	maxVibrationMillisecond = 250
)

// vibrationDuration converts a weapon vibration intensity, in milliseconds,
// into a vibration duration.
func vibrationDuration(intensity int) time.Duration {
	if intensity > maxVibrationMillisecond {
		intensity = maxVibrationMillisecond
	}
	if intensity < 0 {
		intensity = 0
	}
	return time.Duration(intensity) * time.Millisecond
}

// vibrate implements weaponOwner. Mobile devices vibrate, and so does the
// active gamepad.
func (g *game) vibrate(intensity int) {
	if g.noVibrate {
		return
	}
	d := vibrationDuration(intensity)
	if d == 0 {
		return
	}

	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: vibrateMagnitude,
	})
	if g.activeGamepad != -1 {
		ebiten.VibrateGamepad(g.activeGamepad, &ebiten.VibrateGamepadOptions{
			Duration:        d,
			StrongMagnitude: gamepadStrongMagnitude,
			WeakMagnitude:   gamepadWeakMagnitude,
		})
	}
}
