// shelfcut-server exposes the ShelfCut compute pipeline over HTTP.
//
// Build:
//   go build -o shelfcut-server ./cmd/shelfcut-server
//
// Endpoints:
//   GET  /healthz       liveness
//   GET  /api/defaults  default design parameters
//   POST /api/compute   full derived result for posted parameters
//   POST /api/chart     utilization chart HTML for posted parameters
package main

import (
	"flag"
	"log"

	"github.com/piwi3910/ShelfCut/internal/api"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	r := api.NewRouter()
	log.Printf("ShelfCut server listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
