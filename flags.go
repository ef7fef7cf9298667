//go:build !js || !wasm
// +build !js !wasm

package main

import (
	"flag"
	"strings"
)

func parseFlags(g *game) {
	var weapons string
	flag.StringVar(&weapons, "weapon", "", "Comma separated weapon definitions to load")
	flag.StringVar(&g.weaponDir, "dir", "", "Load weapon definitions from this directory instead of the embedded assets")
	flag.BoolVar(&g.debugMode, "debug", false, "Enable debug mode")
	flag.BoolVar(&g.muteAudio, "mute", false, "Mute audio")
	flag.BoolVar(&g.noVibrate, "novibrate", false, "Disable vibration")
	flag.Parse()

	if weapons != "" {
		g.weaponPaths = strings.Split(weapons, ",")
	}
}
