package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/spell-duel/internal/config"
	"github.com/KirkDiggler/spell-duel/internal/domain/combat"
	"github.com/KirkDiggler/spell-duel/internal/events"
	"github.com/KirkDiggler/spell-duel/internal/logging"
	"github.com/KirkDiggler/spell-duel/internal/simulation"
	"github.com/KirkDiggler/spell-duel/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	duelCfg := simulation.DuelTemplate(cfg)
	duelCfg.ID = uuid.NewGoogleUUIDGenerator().New()
	duelCfg.Logger = logger
	duelCfg.Listeners = []events.Listener{events.NewZapListener(logger)}

	duel, err := combat.NewDuel(&duelCfg)
	if err != nil {
		logger.Fatal("Failed to set up duel", zap.Error(err))
	}

	result, err := duel.Run(ctx)
	if err != nil {
		logger.Fatal("Duel interrupted", zap.Error(err))
	}

	for _, line := range result.Log {
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("Outcome:    %s\n", result.Outcome)
	if result.Winner != "" {
		fmt.Printf("Winner:     %s\n", result.Winner)
	}
	fmt.Printf("Rounds:     %d\n", result.Rounds)
	fmt.Printf("Mana spent: %d\n", result.ManaSpent)
	fmt.Printf("Spells:     %v\n", result.Spells)
	fmt.Printf("Passes:     %d\n", result.Passes)
}
