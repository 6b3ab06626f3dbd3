// Package main implements the entry point for the roster API server,
// which maintains an in-memory roster of records and exposes CRUD
// operations over HTTP.
package main

import (
	"context"
	"log"
)

// main is the entry point for the roster-api server. It initializes
// configuration, logging, and the record store, then runs the HTTP
// server until a shutdown signal arrives.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
