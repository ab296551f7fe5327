// Package store содержит бизнес-логику выдачи магазинов для пользователей
// и сводки для владельца магазина.
package store

import (
	"context"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// Repository описывает контракт хранилища для операций с магазинами.
type Repository interface {
	// ListStoresForUser возвращает магазины со средней оценкой
	// и собственной оценкой вызывающего.
	ListStoresForUser(ctx context.Context, callerID int, filter models.StoreFilter) ([]*models.StoreListItem, error)

	// GetStoreByUserID возвращает магазин по идентификатору владельца.
	GetStoreByUserID(ctx context.Context, userID int) (*models.Store, error)

	// AverageRatingForStore возвращает среднюю оценку магазина, 0 без оценок.
	AverageRatingForStore(ctx context.Context, storeID int) (float64, error)

	// ListRatersForStore возвращает пользователей, оценивших магазин.
	ListRatersForStore(ctx context.Context, storeID int) ([]*models.Rater, error)
}

// Service реализует операции с магазинами поверх хранилища.
type Service struct {
	repo Repository
}

// New создаёт новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForUser возвращает магазины по фильтру вместе с собственной
// оценкой вызывающего пользователя.
func (s *Service) ListForUser(ctx context.Context, callerID int, filter models.StoreFilter) ([]*models.StoreListItem, error) {
	return s.repo.ListStoresForUser(ctx, callerID, filter)
}

// OwnerDashboard собирает сводку владельца: средняя оценка его магазина
// и список оценивших. Если магазина у вызывающего нет, ошибка хранилища
// ErrStoreNotFound уходит вызывающему без изменений.
func (s *Service) OwnerDashboard(ctx context.Context, ownerID int) (*models.OwnerDashboard, error) {
	st, err := s.repo.GetStoreByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	avg, err := s.repo.AverageRatingForStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	raters, err := s.repo.ListRatersForStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}

	return &models.OwnerDashboard{
		AverageRating: avg,
		RatedBy:       raters,
	}, nil
}
