package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"diorama/internal/config"
	"diorama/internal/game"
)

func init() {
	// raylib must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("diorama: ")

	configPath := flag.String("config", "diorama.toml", "settings file; missing means defaults")
	assetRoot := flag.String("assets", "", "asset directory, overrides the config")
	frames := flag.Int("frames", 0, "exit after this many frames (0 runs until closed)")
	watch := flag.Bool("watch", false, "reload animation and render settings when the config file changes")
	printConfig := flag.Bool("print-config", false, "print the effective settings as TOML and exit")
	flag.Parse()

	// Resolve assets next to the binary for deployed builds. "go run" builds
	// into a temp go-build directory, so it keeps the working directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			*configPath = absPath(*configPath)
			if *assetRoot != "" {
				*assetRoot = absPath(*assetRoot)
			}
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetRoot != "" {
		cfg.Assets.Root = *assetRoot
	}
	if *printConfig {
		data, err := config.Encode(cfg)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg)
	g.MaxFrames = *frames
	if *watch {
		reload, err := config.Watch(ctx, *configPath)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			g.Reload = reload
		}
	}

	if err := g.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
