package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/server"
	"github.com/automoto/arrowfall/terrain"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (empty = last saved tuning)")
	port := flag.Uint("port", 0, "Server port (0 = config value)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate in updates per second (0 = config value)")
	name := flag.String("name", "", "Server display name (empty = config value)")
	level := flag.String("level", "", "TMX level path (empty = config value)")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	flag.Parse()

	store, err := config.OpenStore("arrowfall")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	cfg := loadConfig(*configPath, store)
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *tickRate > 0 {
		cfg.Server.TickRate = *tickRate
	}
	if *name != "" {
		cfg.Server.Name = *name
	}
	if *level != "" {
		cfg.Server.Level = *level
	}
	if *version != "" {
		cfg.Server.Version = *version
	}
	cfg.Apply()

	if *configPath != "" {
		if err := store.SaveTuning(cfg); err != nil {
			log.Printf("Warning: tuning not persisted: %v", err)
		}
	}

	dir, file := filepath.Split(cfg.Server.Level)
	if dir == "" {
		dir = "."
	}
	lvl, err := terrain.LoadTMX(os.DirFS(dir), file, terrain.DefaultLoadOptions)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level %q: %dx%d tiles, %d spawn points",
		lvl.Name, lvl.Terrain.Width(), lvl.Terrain.Height(), len(lvl.Spawns))

	srv, err := server.NewServer(lvl, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		srv.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Arrowfall server %q on port %d (tick rate: %d/s, version: %s)",
		cfg.Server.Name, cfg.Server.Port, cfg.Server.TickRate, cfg.Server.Version)
	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig prefers an explicit file, then the last saved tuning, then the
// built-in defaults.
func loadConfig(path string, store *config.Store) config.Config {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return *cfg
	}

	saved, err := store.LoadTuning()
	if err == nil && saved != nil {
		log.Println("Using saved tuning")
		return *saved
	}
	return config.Defaults()
}
