// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, магазинов и оценок. Предоставляет методы создания
// и чтения записей, построение фильтруемых списков и атомарный upsert оценки.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы и обработчики сопоставляют их
// с кодами ответов, не заглядывая в текст ошибок драйвера.
var (
	// ErrUserNotFound — пользователь с таким email или id не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreNotFound — магазин не найден.
	ErrStoreNotFound = errors.New("store not found")
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already registered")
)

// Storage инкапсулирует пул соединений с PostgreSQL и реализует
// методы работы с пользователями, магазинами и оценками.
type Storage struct {
	DB *sqlx.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sqlx.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}
