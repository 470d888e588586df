// Command reportview serves the report table page.
// Usage: go run ./cmd/reportview [-addr :8080] [-env-file .env] [-timeout 0]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/raysh454/reportview/internal/app"
	"github.com/raysh454/reportview/internal/cli"
	"github.com/raysh454/reportview/internal/logging"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "usage: reportview [-addr :8080] [-env-file .env] [-timeout 0]")
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg, err := app.LoadConfig(args)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}

	logger := logging.NewStdoutLogger("reportview")

	application, err := app.NewApplication(cfg, args, logger)
	if err != nil {
		logger.Error("startup failed", logging.Field{Key: "error", Value: err})
		os.Exit(1)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("server error", logging.Field{Key: "error", Value: err})
		os.Exit(1)
	}
}
