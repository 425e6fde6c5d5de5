package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-sdl/game"
	"github.com/sheikhrachel/go-life-sdl/utils"
)

// SDL event handling has to stay on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	// Load configuration - fallback to defaults only if the file doesn't
	// exist; a present-but-broken config is a fatal error.
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	g, err := game.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g.Run(ctx)

	stats := g.Stats()
	fmt.Println("Arrivederci")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
