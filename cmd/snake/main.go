package main

import (
	"log"

	"snake/internal/domain"
	"snake/internal/ui/graphics"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := domain.DefaultBoardConfig()
	game, err := domain.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	log.Printf("Starting on %dx%d board: %s",
		cfg.MaxCellsX, cfg.MaxCellsY, game.Snake().DebugSummary())

	engine := graphics.NewEngine(game)
	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
