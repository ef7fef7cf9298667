//go:build debug

package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
)

const debugAddress = "localhost:6060"

func init() {
	go func() {
		log.Printf("Serving pprof on http://%s/debug/pprof/", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, nil))
	}()
}
