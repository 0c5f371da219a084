package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/spell-duel/internal/config"
	"github.com/KirkDiggler/spell-duel/internal/logging"
	"github.com/KirkDiggler/spell-duel/internal/repositories/results"
	"github.com/KirkDiggler/spell-duel/internal/simulation"
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

	var repo results.Repository
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			logger.Fatal("Failed to parse Redis URL", zap.Error(parseErr))
		}
		redisClient = redis.NewClient(opts)

		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			logger.Warn("Failed to connect to Redis, falling back to in-memory results", zap.Error(pingErr))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			logger.Info("Connected to Redis", zap.String("addr", opts.Addr))
			repo = results.NewRedis(redisClient)
		}
	}
	if repo == nil {
		repo = results.NewInMemoryRepository(nil)
	}
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	runner, err := simulation.NewRunner(&simulation.Config{
		Games:      cfg.Simulation.Games,
		Workers:    cfg.Simulation.Workers,
		BaseSeed:   cfg.Duel.Seed,
		Duel:       simulation.DuelTemplate(cfg),
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("Failed to set up simulation", zap.Error(err))
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Fatal("Simulation failed", zap.Error(err))
	}

	fmt.Printf("Batch:  %s\n", summary.BatchID)
	fmt.Printf("Games:  %d\n", summary.Games)
	fmt.Printf("Wins:   %d (%.1f%%)\n", summary.Wins, summary.WinRate()*100)
	fmt.Printf("Losses: %d\n", summary.Losses)
	fmt.Printf("Draws:  %d\n", summary.Draws)

	if summary.CheapestWin == nil {
		fmt.Println("No winning duel")
		return
	}
	fmt.Printf("Cheapest win: %d mana (seed %d, duel %s)\n",
		summary.CheapestWin.ManaSpent, summary.CheapestWin.Seed, summary.CheapestWin.ID)
	fmt.Printf("Spells: %v\n", summary.CheapestWin.Spells)
}
