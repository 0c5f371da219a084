package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spell-duel/internal/repositories/results"
)

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <batch-id>", os.Args[0])
	}
	batchID := os.Args[1]

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := results.NewRedis(client)
	list, err := repo.ListByBatch(ctx, batchID)
	if err != nil {
		log.Fatalf("Failed to list batch %s: %v", batchID, err)
	}

	fmt.Printf("Found %d duels in batch %s:\n", len(list), batchID)
	for _, result := range list {
		fmt.Printf("  seed %-6d %-13s rounds=%-3d mana=%-5d %s\n",
			result.Seed, result.Outcome, result.Rounds, result.ManaSpent, strings.Join(result.Spells, ","))
	}
}
