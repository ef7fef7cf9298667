package main

import (
	"fmt"
	"image"
	"io/fs"
	"math"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// phaseIncrement advances the spread oscillator once per shot.
	phaseIncrement = 10.0

	// fireTolerance absorbs rounding when the countdown is decremented by
	// fractional time steps.
	fireTolerance = 1e-9
)

type projectileKind int

const (
	projectileNormal projectileKind = iota
	projectileFlame
)

// weaponOwner is the game state a weapon creates projectiles in and requests
// sounds and vibration from.
type weaponOwner interface {
	preloadSound(p string)
	playSound(p string)
	vibrate(intensity int)
	createProjectile(x, y, dx, dy, timeout, damage float64, sprite *ebiten.Image, rect image.Rectangle, flipped bool)
	createFireProjectile(x, y, dx, dy, damage float64, flipped bool)
}

// weaponConfig is the parsed weapon definition.
type weaponConfig struct {
	name string

	maxAmmo   int
	damage    float64
	delay     float64 // Seconds between shots.
	spread    float64 // Radians.
	velocity  float64
	timeout   float64 // Seconds a projectile lives.
	vibration int

	spriteRect     image.Rectangle
	projectileRect image.Rectangle
	projectile     projectileKind

	spritePath string
	soundPath  string // Empty when the weapon is silent.
}

func newWeaponConfig(name string, p weaponParams) weaponConfig {
	// Asset paths are relative to the definition.
	dir := path.Dir(name)

	c := weaponConfig{
		name:      name,
		maxAmmo:   p.intValue(paramAmmo),
		damage:    p.floatValue(paramDamage),
		delay:     p.floatValue(paramDelay),
		spread:    p.floatValue(paramSpread),
		velocity:  p.floatValue(paramVelocity),
		timeout:   p.floatValue(paramTimeout),
		vibration: p.intValue(paramVibration),
		spriteRect: image.Rect(
			p.intValue(paramWeaponRectLeft),
			p.intValue(paramWeaponRectTop),
			p.intValue(paramWeaponRectRight),
			p.intValue(paramWeaponRectBottom)),
		projectileRect: image.Rect(
			p.intValue(paramProjectileRectLeft),
			p.intValue(paramProjectileRectTop),
			p.intValue(paramProjectileRectRight),
			p.intValue(paramProjectileRectBottom)),
		spritePath: path.Join(dir, p.stringValue(paramSprite)),
	}
	if p.stringValue(paramProjectileType) == "flame" {
		c.projectile = projectileFlame
	}
	if sound := p.stringValue(paramSound); sound != noneString {
		c.soundPath = path.Join(dir, sound)
	}
	return c
}

// Weapon is a single instance of a weapon. Weapons create projectiles which
// harm creeps. Weapons also define the projectiles they generate.
type Weapon struct {
	entity

	owner  weaponOwner
	config weaponConfig

	ammo      int
	countdown float64
	phase     float64
	shooting  bool

	targetX, targetY float64

	sprite         *ebiten.Image
	spriteResolved bool
	loadSprite     func(p string) (*ebiten.Image, error)
}

// loadWeapon loads the weapon definition name from fsys. Sprites and sounds
// are resolved relative to the definition.
func loadWeapon(fsys fs.FS, name string, owner weaponOwner) (*Weapon, error) {
	tokens, err := readTokens(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon definition: %w", err)
	}

	params, err := parseWeaponParams(name, tokens)
	if err != nil {
		return nil, err
	}

	c := newWeaponConfig(name, params)
	w := &Weapon{
		owner:  owner,
		config: c,
		ammo:   c.maxAmmo,
		loadSprite: func(p string) (*ebiten.Image, error) {
			return loadImage(fsys, p)
		},
	}
	if c.soundPath != "" {
		owner.preloadSound(c.soundPath)
	}
	return w, nil
}

// Name returns the definition the weapon was loaded from.
func (w *Weapon) Name() string {
	return w.config.name
}

// SetTarget sets the aim direction relative to the weapon.
func (w *Weapon) SetTarget(x, y float64) {
	w.targetX, w.targetY = x, y
}

// EnableShooting sets whether the weapon fires when it is able to.
func (w *Weapon) EnableShooting(shooting bool) {
	w.shooting = shooting
}

// Shooting returns whether shooting is enabled.
func (w *Weapon) Shooting() bool {
	return w.shooting
}

// Ammo returns the remaining ammo.
func (w *Weapon) Ammo() int {
	return w.ammo
}

// MaxAmmo returns the ammo capacity.
func (w *Weapon) MaxAmmo() int {
	return w.config.maxAmmo
}

// Refill adds ammo up to the capacity of the weapon.
func (w *Weapon) Refill(amount int) {
	w.ammo += amount
	if w.ammo > w.config.maxAmmo {
		w.ammo = w.config.maxAmmo
	}
}

// Step advances the weapon by dt seconds and fires at most once.
func (w *Weapon) Step(dt float64) {
	w.entity.step(dt)

	w.countdown -= dt
	if !w.shooting || w.countdown > fireTolerance || w.sprite == nil || w.ammo <= 0 {
		return
	}

	w.ammo--
	w.countdown = w.config.delay
	w.phase += phaseIncrement

	c := &w.config
	shotDistance := float64(c.spriteRect.Dx() / 2)
	shotAngle := math.Atan2(w.targetY, w.targetX)
	spreadAngle := spreadOffset(c.spread, w.phase)

	x := w.x + shotDistance*math.Cos(shotAngle)
	y := w.y + shotDistance*math.Sin(shotAngle)
	dx := w.dx + c.velocity*math.Cos(shotAngle+spreadAngle)
	dy := w.dy + c.velocity*math.Sin(shotAngle+spreadAngle)

	if c.projectile == projectileFlame {
		w.owner.createFireProjectile(x, y, dx, dy, c.damage, w.flipped)
	} else {
		w.owner.createProjectile(x, y, dx, dy, c.timeout, c.damage, w.sprite, c.projectileRect, w.flipped)
	}

	if c.vibration > 0 {
		w.owner.vibrate(c.vibration)
	}
	if c.soundPath != "" {
		w.owner.playSound(c.soundPath)
	}
}

// spreadOffset returns the angular deviation of a shot fired at phase.
// Spread oscillates with the shot count rather than being random.
func spreadOffset(spread, phase float64) float64 {
	return spread * math.Sin(phase)
}
