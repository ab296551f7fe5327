// Package rating содержит бизнес-логику приёма оценок магазинов.
package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-rating/internal/models"
	"github.com/magabrotheeeer/store-rating/internal/storage/repository"
)

// ErrRatingOutOfRange — значение оценки вне диапазона 1..5.
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// Repository описывает контракт хранилища для работы с оценками.
type Repository interface {
	// StoreExists проверяет наличие магазина.
	StoreExists(ctx context.Context, storeID int) (bool, error)

	// UpsertRating атомарно вставляет или перезаписывает оценку.
	UpsertRating(ctx context.Context, userID, storeID, rating int) (*models.Rating, error)
}

// Service реализует приём оценок поверх хранилища.
type Service struct {
	repo Repository
}

// New создаёт новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit сохраняет оценку магазина пользователем. Значение вне 1..5
// отклоняется, несуществующий магазин даёт ErrStoreNotFound. Повторная
// отправка той же парой перезаписывает существующую строку атомарным
// upsert, без чтения перед записью.
func (s *Service) Submit(ctx context.Context, userID, storeID, rating int) (*models.Rating, error) {
	const op = "rating.Submit"

	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	exists, err := s.repo.StoreExists(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, repository.ErrStoreNotFound
	}

	return s.repo.UpsertRating(ctx, userID, storeID, rating)
}
