package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7-alpine"

// StartRedisContainer runs a throwaway Redis in Docker and returns a client
// for it. With TEST_REDIS_ADDR set, that server is flushed and used instead.
// The test is skipped in -short mode or when Docker is unavailable.
func StartRedisContainer(t *testing.T) redis.UniversalClient {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	if os.Getenv("TEST_REDIS_ADDR") != "" {
		return CreateTestRedisClientOrSkip(t)
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err, "failed to start redis container")

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err, "failed to resolve redis endpoint")

	require.NoError(t, WaitForRedis(endpoint, 10*time.Second))

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
