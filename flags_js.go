//go:build js && wasm
// +build js,wasm

package main

// Command-line flags are not available in the browser.
func parseFlags(g *game) {}
