package broker

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start redis container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func TestPublish(t *testing.T) {
	uri := setupRedis(t)

	cfg := Config{
		URI:        uri,
		StreamName: "media-created",
		GroupName:  "enrichers",
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	publisher := NewPublisher(client, PublisherConfig{Timeout: 2000})

	require.NoError(t, publisher.Publish(context.Background(), "6617a1c2e9d3f40001a2b3c4"))

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	entries, err := rdb.XRange(context.Background(), "media-created", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "6617a1c2e9d3f40001a2b3c4", entries[0].Values["media_id"])
}

func TestNewClientIdempotentGroupCreation(t *testing.T) {
	uri := setupRedis(t)

	cfg := Config{
		URI:        uri,
		StreamName: "media-created",
		GroupName:  "enrichers",
	}

	first, err := NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = first.Close()
	})

	second, err := NewClient(cfg)
	require.NoError(t, err, "an existing consumer group must not fail the client")
	t.Cleanup(func() {
		_ = second.Close()
	})
}
