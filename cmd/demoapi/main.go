// Command demoapi starts a mock report API for local development.
// Usage: go run ./cmd/demoapi [port]
// Default port: 9999, credentials demo/demo.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/raysh454/reportview/internal/demoapi"
	"github.com/raysh454/reportview/internal/logging"
)

func main() {
	cfg := demoapi.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("Point reportview at this server with:")
	fmt.Printf("  VITE_API_BASE_URL=http://localhost:%d%s\n", cfg.Port, cfg.PathPrefix)
	fmt.Printf("  VITE_USERNAME=%s\n", cfg.Username)
	fmt.Printf("  VITE_PASSWORD=%s\n", cfg.Password)
	fmt.Println()
	fmt.Println("Switch responses with:")
	fmt.Printf("  curl -X POST localhost:%d/demo/fixture -d '{\"fixture\":\"not-found\"}'\n", cfg.Port)
	fmt.Println()

	api := demoapi.NewDemoAPI(cfg, logging.NewStdoutLogger("demoapi"))
	if err := api.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
