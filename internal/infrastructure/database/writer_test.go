package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())
	uri := fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		t.Fatal("Failed to create MongoDB client:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Fatal("Failed to ping MongoDB:", err)
	}

	return uri
}

func connectTestDB(t *testing.T) *Database {
	t.Helper()

	uri := setupMongo(t)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func TestUserWriteEnforcesUniqueEmail(t *testing.T) {
	db := connectTestDB(t)
	writer := NewUserWriter(db)
	retriever := NewUserRetriever(db)

	user := &model.User{Email: "a@b.com"}
	require.NoError(t, user.SetPassword("longenough1"))
	require.NoError(t, writer.Write(context.Background(), user))

	dup := &model.User{Email: "a@b.com"}
	require.NoError(t, dup.SetPassword("another-password"))

	err := writer.Write(context.Background(), dup)
	require.Error(t, err)
	require.True(t, domainerr.IsKind(err, domainerr.KindDuplicate))

	stored, err := retriever.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.True(t, stored.ComparePassword("longenough1"), "the original record must survive")
	require.NotEqual(t, "longenough1", stored.PasswordHash)
}

func TestMediaWriteEnforcesUniqueFields(t *testing.T) {
	db := connectTestDB(t)
	writer := NewMediaWriter(db)

	base := model.Media{
		Title:          "sunset",
		Description:    "a sunset clip",
		MediaURL:       "https://cdn.example.com/sunset.mp4",
		ThumbnailURL:   "https://cdn.example.com/sunset.jpg",
		Controls:       true,
		Transformation: model.Transformation{Width: 1080, Height: 1920, Quality: 100},
	}

	first := base
	require.NoError(t, writer.Write(context.Background(), &first))

	tests := []struct {
		name   string
		modify func(m *model.Media)
	}{
		{
			name: "duplicate title",
			modify: func(m *model.Media) {
				m.MediaURL += "-2"
				m.ThumbnailURL += "-2"
			},
		},
		{
			name: "duplicate media url",
			modify: func(m *model.Media) {
				m.Title += "-2"
				m.ThumbnailURL += "-2"
			},
		},
		{
			name: "duplicate thumbnail url",
			modify: func(m *model.Media) {
				m.Title += "-3"
				m.MediaURL += "-3"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied := base
			tt.modify(&copied)

			err := writer.Write(context.Background(), &copied)
			require.Error(t, err)
			require.True(t, domainerr.IsKind(err, domainerr.KindDuplicate))
		})
	}
}

func TestMediaWriteRejectsInvalidDocuments(t *testing.T) {
	db := connectTestDB(t)
	writer := NewMediaWriter(db)

	media := model.Media{
		Title:          "no description",
		MediaURL:       "https://cdn.example.com/x.mp4",
		ThumbnailURL:   "https://cdn.example.com/x.jpg",
		Transformation: model.Transformation{Width: 1080, Height: 1920, Quality: 100},
	}

	err := writer.Write(context.Background(), &media)
	require.Error(t, err, "the collection validator rejects missing required fields")
}
