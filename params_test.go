package main

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

// requiredDefinition holds every parameter a definition must provide.
var requiredDefinition = map[string]string{
	paramSprite:               "gun.png",
	paramWeaponRectLeft:       "0",
	paramWeaponRectTop:        "0",
	paramWeaponRectRight:      "24",
	paramWeaponRectBottom:     "12",
	paramProjectileRectLeft:   "24",
	paramProjectileRectTop:    "0",
	paramProjectileRectRight:  "28",
	paramProjectileRectBottom: "4",
}

func tokensOf(params map[string]string, skip string) []string {
	var tokens []string
	for k, v := range params {
		if k == skip {
			continue
		}
		tokens = append(tokens, k, v)
	}
	return tokens
}

// TestParseWeaponParamsDefaults verifies parameters missing from a
// definition keep their defaults
func TestParseWeaponParamsDefaults(t *testing.T) {
	params, err := parseWeaponParams("gun.txt", tokensOf(requiredDefinition, ""))
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if v := params.intValue(paramAmmo); v != 0 {
		t.Errorf("Expected ammo 0, got %d", v)
	}
	if v := params.floatValue(paramDamage); v != 0 {
		t.Errorf("Expected damage 0, got %f", v)
	}
	if v := params.floatValue(paramDelay); v != 0.2 {
		t.Errorf("Expected delay 0.2, got %f", v)
	}
	if v := params.floatValue(paramSpread); v != 0.262 {
		t.Errorf("Expected spread 0.262, got %f", v)
	}
	if v := params.floatValue(paramTimeout); v != 1.0 {
		t.Errorf("Expected timeout 1.0, got %f", v)
	}
	if v := params.floatValue(paramVelocity); v != 60.0 {
		t.Errorf("Expected velocity 60.0, got %f", v)
	}
	if v := params.intValue(paramVibration); v != 0 {
		t.Errorf("Expected vibration 0, got %d", v)
	}
	if v := params.stringValue(paramProjectileType); v != "normal" {
		t.Errorf("Expected projectile type normal, got %s", v)
	}
	if v := params.stringValue(paramSound); v != "none" {
		t.Errorf("Expected sound none, got %s", v)
	}
}

// TestParseWeaponParamsOverrides verifies user values replace defaults
func TestParseWeaponParamsOverrides(t *testing.T) {
	tokens := append(tokensOf(requiredDefinition, ""),
		paramAmmo, "30",
		paramDelay, "0.05",
		paramProjectileType, "flame",
		paramDelay, "0.1",
	)
	params, err := parseWeaponParams("gun.txt", tokens)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if v := params.intValue(paramAmmo); v != 30 {
		t.Errorf("Expected ammo 30, got %d", v)
	}
	if v := params.floatValue(paramDelay); v != 0.1 {
		t.Errorf("Expected the last delay 0.1 to win, got %f", v)
	}
	if v := params.stringValue(paramProjectileType); v != "flame" {
		t.Errorf("Expected projectile type flame, got %s", v)
	}
	if v := params.intValue(paramWeaponRectRight); v != 24 {
		t.Errorf("Expected weapon rect right 24, got %d", v)
	}

	// The shared defaults are never modified.
	if v := weaponParameters[paramAmmo].i; v != defaultAmmo {
		t.Errorf("Expected default ammo to stay %d, got %d", defaultAmmo, v)
	}
	if v := weaponParameters[paramDelay].f; v != defaultDelay {
		t.Errorf("Expected default delay to stay %f, got %f", defaultDelay, v)
	}
}

// TestParseWeaponParamsMissing verifies every required parameter is enforced
func TestParseWeaponParamsMissing(t *testing.T) {
	for _, key := range requiredParameters {
		t.Run(key, func(t *testing.T) {
			_, err := parseWeaponParams("gun.txt", tokensOf(requiredDefinition, key))
			if !errors.Is(err, ErrMissingParameter) {
				t.Fatalf("Expected ErrMissingParameter, got %v", err)
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Expected *LoadError, got %T", err)
			}
			if loadErr.Key != key {
				t.Errorf("Expected error to name %s, got %s", key, loadErr.Key)
			}
			if loadErr.Name != "gun.txt" {
				t.Errorf("Expected error to name gun.txt, got %s", loadErr.Name)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("Expected message to contain %s, got %s", key, err)
			}
		})
	}
}

// TestParseWeaponParamsPlaceholder verifies an explicit placeholder value
// counts as missing
func TestParseWeaponParamsPlaceholder(t *testing.T) {
	tokens := append(tokensOf(requiredDefinition, ""), paramSprite, "none")
	_, err := parseWeaponParams("gun.txt", tokens)
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("Expected ErrMissingParameter, got %v", err)
	}
}

// TestParseWeaponParamsInvalid verifies unknown keys and bad values are
// rejected
func TestParseWeaponParamsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		key    string
		err    error
	}{
		{"unknown key", []string{"vertical_spread", "0.1"}, "vertical_spread", ErrUnknownParameter},
		{"unknown key without value", []string{"recoil"}, "recoil", ErrUnknownParameter},
		{"malformed int", []string{paramAmmo, "lots"}, paramAmmo, ErrMalformedParameter},
		{"float for int", []string{paramVibration, "1.5"}, paramVibration, ErrMalformedParameter},
		{"malformed float", []string{paramDelay, "fast"}, paramDelay, ErrMalformedParameter},
		{"missing value", []string{paramAmmo}, paramAmmo, ErrMalformedParameter},
		{"not a number", []string{paramDelay, "NaN"}, paramDelay, ErrMalformedParameter},
		{"infinite float", []string{paramVelocity, "Inf"}, paramVelocity, ErrMalformedParameter},
		{"negative infinite float", []string{paramSpread, "-Inf"}, paramSpread, ErrMalformedParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := append(tokensOf(requiredDefinition, ""), tt.tokens...)
			params, err := parseWeaponParams("gun.txt", tokens)
			if params != nil {
				t.Error("Expected no parameters on error")
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) || loadErr.Key != tt.key {
				t.Errorf("Expected *LoadError naming %s, got %v", tt.key, err)
			}
		})
	}
}

// TestReadTokens verifies whitespace splitting and comments
func TestReadTokens(t *testing.T) {
	fsys := fstest.MapFS{
		"weapon.txt": {Data: []byte("# A comment\nammo 30 # trailing\n\n\tdelay   0.5\r\nsprite gun.png")},
	}

	tokens, err := readTokens(fsys, "weapon.txt")
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	expected := []string{"ammo", "30", "delay", "0.5", "sprite", "gun.png"}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %q", len(expected), len(tokens), tokens)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("Expected token %d to be %q, got %q", i, expected[i], tokens[i])
		}
	}
}

// TestLoadErrorMessage verifies the parameter is named before the cause
func TestLoadErrorMessage(t *testing.T) {
	tokens := append(tokensOf(requiredDefinition, ""), paramAmmo, "x")
	_, err := parseWeaponParams("gun.txt", tokens)
	if err == nil {
		t.Fatal("Expected error")
	}

	expected := `failed to load weapon gun.txt: parameter "ammo": malformed parameter: `
	if !strings.HasPrefix(err.Error(), expected) {
		t.Errorf("Expected message starting with %s, got %s", expected, err)
	}
}
