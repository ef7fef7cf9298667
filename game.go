package main

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"math"
	"math/rand"
	"os"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

var colorBlood = color.RGBA{102, 0, 0, 255}

const (
	spawnCreeps = 24
	maxCreeps   = 96
	spawnAmmo   = 3
	maxItems    = 8

	creepSpawnTicks = 144 * 3
	ammoSpawnTicks  = 144 * 20

	playerSpeed        = 96.0 // Pixels per second.
	itemPickupDistance = 16.0

	gamepadDeadZone = 0.1
)

var defaultWeapons = []string{
	"assets/weapons/uzi.txt",
	"assets/weapons/flamer.txt",
}

var startButtons = []ebiten.StandardGamepadButton{
	ebiten.StandardGamepadButtonRightBottom,
	ebiten.StandardGamepadButtonRightRight,
	ebiten.StandardGamepadButtonRightLeft,
	ebiten.StandardGamepadButtonRightTop,
	ebiten.StandardGamepadButtonCenterRight,
}

// game is a small arena to try weapons in.
type game struct {
	w, h  int
	level *Level

	player *gamePlayer

	creeps      []*gameCreep
	items       []*gameItem
	projectiles []*projectile

	gameStartTime time.Time

	camScale float64

	overlayImg *ebiten.Image

	audioContext *audio.Context
	sounds       *soundBank // Weapon sounds, resolved like weapon definitions.
	effects      *soundBank // Game sounds, embedded.

	weaponFS    fs.FS
	weaponPaths []string
	weaponDir   string

	gamepadIDs    []ebiten.GamepadID
	gamepadIDsBuf []ebiten.GamepadID
	activeGamepad ebiten.GamepadID

	initialButtonReleased bool

	tick int

	flashMessageText  string
	flashMessageUntil time.Time

	muteAudio bool
	debugMode bool
	noVibrate bool
}

// NewGame returns a new arena game.
func NewGame() (*game, error) {
	g := &game{
		camScale:      2,
		activeGamepad: -1,
		weaponFS:      assetsFS,
	}

	parseFlags(g)
	if g.weaponDir != "" {
		g.weaponFS = os.DirFS(g.weaponDir)
	}
	if len(g.weaponPaths) == 0 {
		g.weaponPaths = defaultWeapons
	}

	g.audioContext = audio.NewContext(sampleRate)
	g.sounds = newSoundBank(g.audioContext, g.weaponFS)
	g.effects = newSoundBank(g.audioContext, assetsFS)

	err := g.loadAssets()
	if err != nil {
		return nil, err
	}

	weapons, err := g.loadWeapons()
	if err != nil {
		return nil, err
	}
	g.player = NewPlayer(weapons)

	err = g.reset()
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (g *game) flashMessage(message string) {
	log.Println(message)

	g.flashMessageText = message
	g.flashMessageUntil = time.Now().Add(3 * time.Second)
}

func (g *game) loadAssets() error {
	var err error
	arenaSS, err = LoadArenaSpriteSheet(assetsFS)
	if err != nil {
		return fmt.Errorf("failed to load embedded spritesheet: %s", err)
	}

	playerSS, err = LoadPlayerSpriteSheet(assetsFS)
	if err != nil {
		return fmt.Errorf("failed to load embedded spritesheet: %s", err)
	}

	imageAtlas, err = loadAtlas(assetsFS)
	if err != nil {
		return err
	}

	return g.effects.preload(soundCreepDie)
}

func (g *game) loadWeapons() ([]*Weapon, error) {
	weapons := make([]*Weapon, 0, len(g.weaponPaths))
	for _, p := range g.weaponPaths {
		w, err := loadWeapon(g.weaponFS, p, g)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded weapon %s (%d rounds)", p, w.MaxAmmo())
		weapons = append(weapons, w)
	}
	return weapons, nil
}

func (g *game) newItem(itemType int) *gameItem {
	x, y := g.level.newSpawnLocation()
	return &gameItem{
		itemType: itemType,
		x:        x,
		y:        y,
		sprite:   imageAtlas[ImageAmmoCrate],
		health:   1,
	}
}

func (g *game) generateLevel() error {
	g.projectiles = nil
	g.creeps = nil
	g.items = nil

	var err error
	g.level, err = NewLevel()
	if err != nil {
		return fmt.Errorf("failed to create new level: %s", err)
	}

	g.player.x, g.player.y = g.level.newSpawnLocation()

	for i := 0; i < spawnAmmo; i++ {
		g.items = append(g.items, g.newItem(itemTypeAmmo))
	}
	for i := 0; i < spawnCreeps; i++ {
		g.creeps = append(g.creeps, newCreep(g.level, imageAtlas[ImageVampire]))
	}
	return nil
}

func (g *game) reset() error {
	log.Println("Starting a new game")

	g.tick = 0
	g.gameStartTime = time.Time{}

	g.updateCursor()

	for _, w := range g.player.weapons {
		w.EnableShooting(false)
		w.Refill(w.MaxAmmo())
	}
	g.player.score = 0

	return g.generateLevel()
}

// Layout is called when the game's layout changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w, h := int(s*float64(outsideWidth)), int(s*float64(outsideHeight))
	if w != g.w || h != g.h {
		g.w, g.h = w, h

		debugBox := image.NewRGBA(image.Rect(0, 0, g.w, 200))
		g.overlayImg = ebiten.NewImageFromImage(debugBox)
	}
	return g.w, g.h
}

func (g *game) updateCursor() {
	if g.activeGamepad != -1 {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
}

func (g *game) updateGamepads() {
	g.gamepadIDsBuf = inpututil.AppendJustConnectedGamepadIDs(g.gamepadIDsBuf[:0])
	for _, id := range g.gamepadIDsBuf {
		log.Printf("gamepad connected: %d", id)
		g.gamepadIDs = append(g.gamepadIDs, id)
	}
	for i := 0; i < len(g.gamepadIDs); i++ {
		id := g.gamepadIDs[i]
		if inpututil.IsGamepadJustDisconnected(id) {
			log.Printf("gamepad disconnected: %d", id)
			g.gamepadIDs = append(g.gamepadIDs[:i], g.gamepadIDs[i+1:]...)
			if id == g.activeGamepad {
				g.activeGamepad = -1
				g.updateCursor()
			}
			i--
			continue
		}

		if g.activeGamepad == -1 {
			for _, button := range startButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, button) {
					log.Printf("gamepad activated: %d", id)
					g.activeGamepad = id
					g.updateCursor()
					break
				}
			}
		}
	}
}

// Update reads current user input and updates the game state.
func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.exit()
		return nil
	}

	g.updateGamepads()

	if g.gameStartTime.IsZero() {
		var pressedKeys []ebiten.Key
		pressedKeys = inpututil.AppendPressedKeys(pressedKeys)
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || g.activeGamepad != -1 || len(pressedKeys) > 0 {
			g.gameStartTime = time.Now()
		}
		return nil
	}

	dt := 1 / float64(ebiten.TPS())

	g.updatePlayer(dt)

	for _, c := range g.creeps {
		c.Update(dt)
	}

	g.updateProjectiles(dt)
	g.updateItems()
	g.spawn()
	g.handleToggles()

	g.tick++
	return nil
}

func (g *game) updatePlayer(dt float64) {
	p := g.player

	pan := playerSpeed * dt
	px, py := p.x, p.y
	if g.activeGamepad != -1 {
		h := ebiten.StandardGamepadAxisValue(g.activeGamepad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(g.activeGamepad, ebiten.StandardGamepadAxisLeftStickVertical)
		if v < -gamepadDeadZone || v > gamepadDeadZone || h < -gamepadDeadZone || h > gamepadDeadZone {
			px += h * pan
			py += v * pan
		}
	} else {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			pan /= 2
		}

		if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			px -= pan
		}
		if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			px += pan
		}
		if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
			py += pan
		}
		if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			py -= pan
		}
	}

	oldX, oldY := p.x, p.y
	if g.level.isFloor(px, py) {
		p.x, p.y = px, py
	} else if g.level.isFloor(px, p.y) {
		p.x = px
	} else if g.level.isFloor(p.x, py) {
		p.y = py
	}
	p.dx, p.dy = (p.x-oldX)/dt, (p.y-oldY)/dt

	fire := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Update player angle.
	var targetX, targetY float64
	if g.activeGamepad != -1 {
		h := ebiten.StandardGamepadAxisValue(g.activeGamepad, ebiten.StandardGamepadAxisRightStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(g.activeGamepad, ebiten.StandardGamepadAxisRightStickVertical)
		if v < -gamepadDeadZone || v > gamepadDeadZone || h < -gamepadDeadZone || h > gamepadDeadZone {
			p.angle = angle(h, v, 0, 0)
			fire = true
		}
		targetX, targetY = math.Cos(p.angle), math.Sin(p.angle)
	} else {
		cx, cy := ebiten.CursorPosition()
		p.angle = angle(float64(cx), float64(cy), float64(g.w/2), float64(g.h/2))
		targetX, targetY = float64(cx-g.w/2), float64(cy-g.h/2)
	}

	if !g.initialButtonReleased {
		if fire {
			fire = false
		} else {
			g.initialButtonReleased = true
		}
	}

	switchWeapon := inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyTab)
	if g.activeGamepad != -1 && inpututil.IsStandardGamepadButtonJustPressed(g.activeGamepad, ebiten.StandardGamepadButtonFrontTopRight) {
		switchWeapon = true
	}
	if switchWeapon && len(p.weapons) > 1 {
		w := p.nextWeapon()
		g.flashMessage(strings.ToUpper(weaponLabel(w)))
	}

	w := p.weapon()
	if w == nil {
		return
	}
	w.SetPosition(p.x, p.y+handOffsetY)
	w.SetVelocity(p.dx, p.dy)
	w.SetFlipped(p.aimingLeft())
	w.SetTarget(targetX, targetY)
	w.EnableShooting(fire)
	w.Step(dt)
}

func (g *game) updateProjectiles(dt float64) {
	alive := g.projectiles[:0]
UPDATEPROJECTILES:
	for _, p := range g.projectiles {
		if !p.update(dt) || !g.level.isFloor(p.Position()) {
			continue
		}

		for _, c := range g.creeps {
			if c.health <= 0 || !p.hits(c.Position()) {
				continue
			}

			if p.flame {
				if p.hit[c] {
					continue
				}
				p.hit[c] = true
				g.hurtCreep(c, p.damage)
				continue
			}

			g.hurtCreep(c, p.damage)
			continue UPDATEPROJECTILES
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(g.projectiles); i++ {
		g.projectiles[i] = nil
	}
	g.projectiles = alive

	// Remove dead creeps.
	creeps := g.creeps[:0]
	for _, c := range g.creeps {
		if c.health > 0 {
			creeps = append(creeps, c)
		}
	}
	g.creeps = creeps
}

func (g *game) updateItems() {
	items := g.items[:0]
	for _, item := range g.items {
		dx, dy := deltaXY(g.player.x, g.player.y, item.x, item.y)
		if dx <= itemPickupDistance && dy <= itemPickupDistance {
			item.use(g.player)
			if w := g.player.weapon(); w != nil {
				g.flashMessage(numberPrinter.Sprintf("AMMO %d", w.Ammo()))
			}
		}
		if item.health > 0 {
			items = append(items, item)
		}
	}
	g.items = items
}

func (g *game) spawn() {
	if g.tick%creepSpawnTicks == 0 && len(g.creeps) < maxCreeps {
		spawnAmount := 1 + rand.Intn(4+g.tick/(144*30))
		for i := 0; i < spawnAmount && len(g.creeps) < maxCreeps; i++ {
			g.creeps = append(g.creeps, newCreep(g.level, imageAtlas[ImageVampire]))
		}
		if g.debugMode {
			g.flashMessage(fmt.Sprintf("SPAWN %d VAMPIRES", spawnAmount))
		}
	}

	if g.tick%ammoSpawnTicks == 0 && len(g.items) < maxItems {
		g.items = append(g.items, g.newItem(itemTypeAmmo))
		if g.debugMode {
			g.flashMessage("SPAWN AMMO")
		}
	}
}

func (g *game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muteAudio = !g.muteAudio
		if g.muteAudio {
			g.flashMessage("AUDIO MUTED")
		} else {
			g.flashMessage("AUDIO UNMUTED")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.debugMode = !g.debugMode
		if g.debugMode {
			g.flashMessage("DEBUG MODE ACTIVATED")
		} else {
			g.flashMessage("DEBUG MODE DEACTIVATED")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if w := g.player.weapon(); w != nil {
			w.Refill(w.MaxAmmo())
			g.flashMessage("REFILLED")
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		err := g.reset()
		if err != nil {
			log.Printf("failed to reset: %s", err)
		}
	}
}

// createProjectile implements weaponOwner.
func (g *game) createProjectile(x, y, dx, dy, timeout, damage float64, sprite *ebiten.Image, rect image.Rectangle, flipped bool) {
	g.projectiles = append(g.projectiles, newProjectile(x, y, dx, dy, timeout, damage, sprite, rect, flipped))
}

// createFireProjectile implements weaponOwner.
func (g *game) createFireProjectile(x, y, dx, dy, damage float64, flipped bool) {
	g.projectiles = append(g.projectiles, newFireProjectile(x, y, dx, dy, damage, flipped))
}

func (g *game) hurtCreep(c *gameCreep, damage float64) {
	if !c.hurt(damage) {
		return
	}

	// Killed creep.
	g.player.score++
	g.playEffect(soundCreepDie)
}

func (g *game) drawText(target *ebiten.Image, y float64, scale float64, alpha float64, text string) {
	g.overlayImg.Clear()
	ebitenutil.DebugPrint(g.overlayImg, text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.w/2)-(float64(len(text))*3*scale), y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	target.DrawImage(g.overlayImg, op)
}

// Draw draws the game on the screen.
func (g *game) Draw(screen *ebiten.Image) {
	if g.gameStartTime.IsZero() {
		screen.Fill(colorBlood)

		g.drawText(screen, float64(g.h/2)-350, 16, 1.0, "ARMORER")

		g.drawText(screen, float64(g.h-80), 4, 1.0, "PRESS ANY KEY OR BUTTON TO START")
		return
	}

	drawn := g.renderLevel(screen)

	g.drawHUD(screen)

	flashTime := time.Until(g.flashMessageUntil)
	if flashTime > 0 {
		alpha := flashTime.Seconds() * 4
		if alpha > 1 {
			alpha = 1
		}
		g.drawText(screen, float64(g.h-40), 2, alpha, g.flashMessageText)
	}

	if !g.debugMode {
		return
	}

	// Print game info.
	sx, sy := g.levelCoordinatesToScreen(g.player.x, g.player.y)
	lx, ly, rx, ry, _ := hands(sx, sy, g.camScale, g.player.angle)
	rotation := weaponRotationDegrees(lx, ly, rx, ry)

	g.overlayImg.Clear()
	ebitenutil.DebugPrint(g.overlayImg, fmt.Sprintf("CRP  %d\nPRJ  %d\nSPR  %d\nROT  %0.1f\nTPS  %0.0f\nFPS  %0.0f", len(g.creeps), len(g.projectiles), drawn, rotation, ebiten.ActualTPS(), ebiten.ActualFPS()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(3, 0)
	op.GeoM.Scale(2, 2)
	screen.DrawImage(g.overlayImg, op)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	scoreLabel := numberPrinter.Sprintf("%d", g.player.score)
	g.drawText(screen, 24, 8, 1.0, scoreLabel)

	w := g.player.weapon()
	if w == nil {
		return
	}

	barWidth, barHeight := float32(240), float32(14)
	barX, barY := float32(g.w)/2-barWidth/2, float32(g.h)-96
	fill := float32(0)
	if w.MaxAmmo() > 0 {
		fill = barWidth * float32(w.Ammo()) / float32(w.MaxAmmo())
	}
	vector.DrawFilledRect(screen, barX, barY, fill, barHeight, colornames.Goldenrod, false)
	vector.StrokeRect(screen, barX, barY, barWidth, barHeight, 2, colornames.White, false)

	label := numberPrinter.Sprintf("%s  %d / %d", strings.ToUpper(weaponLabel(w)), w.Ammo(), w.MaxAmmo())
	g.drawText(screen, float64(barY)-40, 2, 1.0, label)
}

// renderSprite renders a sprite centered at world position x, y.
func (g *game) renderSprite(x float64, y float64, angle float64, scale float64, alpha float64, flipped bool, sprite *ebiten.Image, target *ebiten.Image) int {
	if alpha < .01 || sprite == nil {
		return 0
	}

	b := sprite.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// Skip drawing off-screen sprites.
	drawX, drawY := g.levelCoordinatesToScreen(x, y)
	padding := math.Max(w, h) * scale * g.camScale
	if drawX+padding < 0 || drawY+padding < 0 || drawX > float64(g.w)+padding || drawY > float64(g.h)+padding {
		return 0
	}

	op := &ebiten.DrawImageOptions{}
	if flipped {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(angle)
	// Zoom.
	op.GeoM.Scale(g.camScale, g.camScale)
	op.GeoM.Translate(drawX, drawY)

	op.ColorScale.ScaleAlpha(float32(alpha))

	target.DrawImage(sprite, op)
	return 1
}

// renderLevel draws the current Level on the screen.
func (g *game) renderLevel(screen *ebiten.Image) int {
	var drawn int

	ts := float64(g.level.tileSize)
	w, h := g.level.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := g.level.Tile(x, y)
			if t == nil {
				continue
			}

			for i := range t.sprites {
				drawn += g.renderSprite((float64(x)+0.5)*ts, (float64(y)+0.5)*ts, 0, 1.0, 1.0, false, t.sprites[i], screen)
			}
		}
	}

	for _, item := range g.items {
		drawn += g.renderSprite(item.x, item.y, 0, 1.0, 1.0, false, item.sprite, screen)
	}

	for _, c := range g.creeps {
		drawn += g.renderSprite(c.x, c.y, 0, 1.0, 1.0, c.flipped, c.sprite, screen)
	}

	for _, p := range g.projectiles {
		if p.flame {
			sx, sy := g.levelCoordinatesToScreen(p.x, p.y)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.radius()*g.camScale), flameColor(p), true)
			drawn++
			continue
		}
		drawn += g.renderSprite(p.x, p.y, p.angle(), 1.0, 1.0, p.flipped, p.sprite, screen)
	}

	playerSprite := playerSS.Frame1
	if g.player.aimingLeft() {
		playerSprite = playerSS.Frame2
	}
	drawn += g.renderSprite(g.player.x, g.player.y, 0, 1.0, 1.0, g.player.aimingLeft(), playerSprite, screen)

	if w := g.player.weapon(); w != nil {
		sx, sy := g.levelCoordinatesToScreen(g.player.x, g.player.y)
		lx, ly, rx, ry, _ := hands(sx, sy, g.camScale, g.player.angle)
		w.Draw(screen, g.camScale, lx, ly, rx, ry)
		drawn++
	}

	return drawn
}

// flameColor fades a flame particle from yellow to red.
func flameColor(p *projectile) color.Color {
	a := p.alpha()
	from, to := colornames.Yellow, colornames.Orangered
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*a + float64(y)*(1-a))
	}
	return color.NRGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: uint8(255 * a),
	}
}

func (g *game) levelCoordinatesToScreen(x, y float64) (float64, float64) {
	return (x-g.player.x)*g.camScale + float64(g.w/2.0), (y-g.player.y)*g.camScale + float64(g.h/2.0)
}

func (g *game) exit() {
	os.Exit(0)
}

// weaponLabel returns the display name of a weapon.
func weaponLabel(w *Weapon) string {
	name := path.Base(w.Name())
	return strings.TrimSuffix(name, path.Ext(name))
}

func deltaXY(x1, y1, x2, y2 float64) (dx float64, dy float64) {
	dx, dy = x1-x2, y1-y2
	if dx < 0 {
		dx *= -1
	}
	if dy < 0 {
		dy *= -1
	}
	return dx, dy
}
