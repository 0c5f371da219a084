package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/spell-duel/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis      RedisConfig
	Log        LogConfig
	Duel       DuelConfig
	Player     PlayerConfig
	Boss       BossConfig
	Simulation SimulationConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: results stay in memory when empty
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// DuelConfig holds the rules of a single duel
type DuelConfig struct {
	Seed      int64
	MaxRounds int
	Attrition int
}

// PlayerConfig holds the caster's starting stats
type PlayerConfig struct {
	Health        int
	Mana          int
	Armor         int
	SpellSequence []string
}

// BossConfig holds the opponent's starting stats
type BossConfig struct {
	Health int
	Attack int
	Armor  int
}

// SimulationConfig holds batch settings
type SimulationConfig struct {
	Games   int
	Workers int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	l := &loader{}

	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Duel: DuelConfig{
			Seed:      l.int64Value("DUEL_SEED", 1),
			MaxRounds: l.intValue("DUEL_MAX_ROUNDS", 100),
			Attrition: l.intValue("DUEL_ATTRITION", 0),
		},
		Player: PlayerConfig{
			Health:        l.intValue("PLAYER_HEALTH", 50),
			Mana:          l.intValue("PLAYER_MANA", 500),
			Armor:         l.intValue("PLAYER_ARMOR", 0),
			SpellSequence: getEnvAsList("SPELL_SEQUENCE"),
		},
		Boss: BossConfig{
			Health: l.intValue("BOSS_HEALTH", 58),
			Attack: l.intValue("BOSS_ATTACK", 9),
			Armor:  l.intValue("BOSS_ARMOR", 0),
		},
		Simulation: SimulationConfig{
			Games:   l.intValue("SIM_GAMES", 1000),
			Workers: l.intValue("SIM_WORKERS", 8),
		},
	}

	if l.err != nil {
		return nil, l.err
	}

	// Validate ranges
	if cfg.Duel.MaxRounds < 1 {
		return nil, errors.Validationf("DUEL_MAX_ROUNDS must be at least 1, got %d", cfg.Duel.MaxRounds)
	}
	if cfg.Simulation.Games < 1 {
		return nil, errors.Validationf("SIM_GAMES must be at least 1, got %d", cfg.Simulation.Games)
	}
	if cfg.Simulation.Workers < 1 {
		return nil, errors.Validationf("SIM_WORKERS must be at least 1, got %d", cfg.Simulation.Workers)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// loader keeps the first parse failure so Load can report it once
type loader struct {
	err error
}

func (l *loader) intValue(key string, defaultValue int) int {
	return int(l.int64Value(key, int64(defaultValue)))
}

func (l *loader) int64Value(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		if l.err == nil {
			l.err = errors.WrapWithCode(err, errors.CodeValidation, key+" must be an integer")
		}
		return defaultValue
	}
	return parsed
}
