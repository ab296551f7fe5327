package repository

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его id
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, passwordHash, address string, role models.Role) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO users (name, email, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		name, email, passwordHash, address, role).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateStore создает тестовый магазин для владельца и возвращает его id
func (f *TestDataFactory) CreateStore(t *testing.T, ownerID int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO stores (user_id) VALUES ($1) RETURNING id`,
		ownerID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateRating создает тестовую оценку магазина
func (f *TestDataFactory) CreateRating(t *testing.T, userID, storeID, rating int) {
	_, err := f.storage.DB.Exec(`INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)`, userID, storeID, rating)
	require.NoError(t, err)
}

// CreateOwnerWithStore создает владельца вместе с магазином, возвращает оба id
func (f *TestDataFactory) CreateOwnerWithStore(t *testing.T, name, email string) (ownerID, storeID int) {
	ownerID = f.CreateUser(t, name, email, "hashedpassword", "1 Owner Street", models.RoleStoreOwner)
	storeID = f.CreateStore(t, ownerID)
	return ownerID, storeID
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort(nat.Port("5432/tcp")),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	// Создаем таблицы
	_, err = storage.DB.Exec(`
        DROP TABLE IF EXISTS ratings CASCADE;
        DROP TABLE IF EXISTS stores CASCADE;
        DROP TABLE IF EXISTS users CASCADE;

        CREATE TABLE users (
            id SERIAL PRIMARY KEY,
            name VARCHAR(60) NOT NULL,
            email VARCHAR(255) NOT NULL UNIQUE,
            password_hash VARCHAR(255) NOT NULL,
            address VARCHAR(400) NOT NULL DEFAULT '',
            role VARCHAR(20) NOT NULL DEFAULT 'user'
                CHECK (role IN ('admin', 'user', 'store_owner'))
        );

        CREATE TABLE stores (
            id SERIAL PRIMARY KEY,
            user_id INTEGER NOT NULL UNIQUE REFERENCES users (id)
        );

        CREATE TABLE ratings (
            id SERIAL PRIMARY KEY,
            user_id INTEGER NOT NULL REFERENCES users (id),
            store_id INTEGER NOT NULL REFERENCES stores (id),
            rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
            created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (user_id, store_id)
        );

        CREATE INDEX idx_ratings_store_id ON ratings (store_id);
        CREATE INDEX idx_ratings_user_id ON ratings (user_id);
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if postgresContainer != nil {
			_ = postgresContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
