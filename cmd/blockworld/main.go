package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"blockworld/internal/config"
	"blockworld/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(config.Path(""))
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatalf("blockworld: %v", err)
	}
}
