package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"
)

// Weapon definition keys.
const (
	paramAmmo                 = "ammo"
	paramDamage               = "damage"
	paramDelay                = "delay"
	paramProjectileRectBottom = "projectile_rect_bottom"
	paramProjectileRectLeft   = "projectile_rect_left"
	paramProjectileRectRight  = "projectile_rect_right"
	paramProjectileRectTop    = "projectile_rect_top"
	paramProjectileType       = "projectile_type"
	paramSound                = "sound"
	paramSpread               = "spread"
	paramSprite               = "sprite"
	paramTimeout              = "timeout"
	paramVelocity             = "velocity"
	paramVibration            = "vibration"
	paramWeaponRectBottom     = "weapon_rect_bottom"
	paramWeaponRectLeft       = "weapon_rect_left"
	paramWeaponRectRight      = "weapon_rect_right"
	paramWeaponRectTop        = "weapon_rect_top"
)

const (
	defaultAmmo           = 0
	defaultDamage         = 0.0
	defaultDelay          = 0.2 // Seconds.
	defaultProjectileType = "normal"
	defaultSpread         = 0.262 // Radians.
	defaultTimeout        = 1.0   // Seconds.
	defaultVelocity       = 60.0
	defaultVibration      = 0

	// Placeholders which mark a parameter as not yet provided.
	noneInt    = -1
	noneString = "none"
)

var (
	// ErrUnknownParameter is returned when a definition contains a key the
	// loader does not accept.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrMissingParameter is returned when a required parameter was not given.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrMalformedParameter is returned when a value does not parse as the
	// type of its key, or a key has no value.
	ErrMalformedParameter = errors.New("malformed parameter")
)

// LoadError describes why a weapon definition could not be loaded.
type LoadError struct {
	Name string // Definition resource.
	Key  string // Offending parameter.
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load weapon %s: parameter %q: %s", e.Name, e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type paramKind int

const (
	paramInt paramKind = iota
	paramFloat
	paramString
)

// paramValue is a single typed parameter value.
type paramValue struct {
	kind paramKind
	i    int
	f    float64
	s    string
}

func intParam(v int) paramValue       { return paramValue{kind: paramInt, i: v} }
func floatParam(v float64) paramValue { return paramValue{kind: paramFloat, f: v} }
func stringParam(v string) paramValue { return paramValue{kind: paramString, s: v} }

// isNone reports whether v still holds a "not provided" placeholder.
func (v paramValue) isNone() bool {
	switch v.kind {
	case paramInt:
		return v.i == noneInt
	case paramString:
		return v.s == noneString
	}
	return false
}

// parse returns a value of the same kind as v parsed from token.
func (v paramValue) parse(token string) (paramValue, error) {
	switch v.kind {
	case paramInt:
		i, err := strconv.Atoi(token)
		if err != nil {
			return v, err
		}
		return intParam(i), nil
	case paramFloat:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return v, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v, fmt.Errorf("non-finite value %s", token)
		}
		return floatParam(f), nil
	default:
		return stringParam(token), nil
	}
}

// weaponParameters defines every accepted weapon and projectile parameter
// along with its default value. It is never modified.
var weaponParameters = map[string]paramValue{
	paramAmmo:                 intParam(defaultAmmo),
	paramDamage:               floatParam(defaultDamage),
	paramDelay:                floatParam(defaultDelay),
	paramProjectileRectBottom: intParam(noneInt),
	paramProjectileRectLeft:   intParam(noneInt),
	paramProjectileRectRight:  intParam(noneInt),
	paramProjectileRectTop:    intParam(noneInt),
	paramProjectileType:       stringParam(defaultProjectileType),
	paramSound:                stringParam(noneString),
	paramSpread:               floatParam(defaultSpread),
	paramSprite:               stringParam(noneString),
	paramTimeout:              floatParam(defaultTimeout),
	paramVelocity:             floatParam(defaultVelocity),
	paramVibration:            intParam(defaultVibration),
	paramWeaponRectBottom:     intParam(noneInt),
	paramWeaponRectLeft:       intParam(noneInt),
	paramWeaponRectRight:      intParam(noneInt),
	paramWeaponRectTop:        intParam(noneInt),
}

// requiredParameters must be overridden by every definition.
var requiredParameters = []string{
	paramProjectileRectBottom,
	paramProjectileRectLeft,
	paramProjectileRectRight,
	paramProjectileRectTop,
	paramSprite,
	paramWeaponRectBottom,
	paramWeaponRectLeft,
	paramWeaponRectRight,
	paramWeaponRectTop,
}

// weaponParams is the merged parameter table of a single definition.
type weaponParams map[string]paramValue

// parseWeaponParams overlays key value tokens onto a copy of the default
// parameters and validates the result.
func parseWeaponParams(name string, tokens []string) (weaponParams, error) {
	params := make(weaponParams, len(weaponParameters))
	for k, v := range weaponParameters {
		params[k] = v
	}

	for i := 0; i < len(tokens); i += 2 {
		key := tokens[i]
		def, ok := weaponParameters[key]
		if !ok {
			return nil, &LoadError{Name: name, Key: key, Err: ErrUnknownParameter}
		}
		if i+1 == len(tokens) {
			return nil, &LoadError{Name: name, Key: key, Err: ErrMalformedParameter}
		}
		v, err := def.parse(tokens[i+1])
		if err != nil {
			return nil, &LoadError{Name: name, Key: key, Err: fmt.Errorf("%w: %s", ErrMalformedParameter, err)}
		}
		params[key] = v
	}

	for _, key := range requiredParameters {
		if params[key].isNone() {
			return nil, &LoadError{Name: name, Key: key, Err: ErrMissingParameter}
		}
	}
	return params, nil
}

func (p weaponParams) intValue(key string) int {
	return p[key].i
}

func (p weaponParams) floatValue(key string) float64 {
	return p[key].f
}

func (p weaponParams) stringValue(key string) string {
	return p[key].s
}

// readTokens reads the whitespace delimited tokens of a definition. A '#'
// comments out the rest of its line.
func readTokens(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens, scanner.Err()
}
