package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// GetStoreByUserID возвращает магазин по идентификатору владельца.
func (s *Storage) GetStoreByUserID(ctx context.Context, userID int) (*models.Store, error) {
	const op = "storage.GetStoreByUserID"

	store := &models.Store{}
	query := `SELECT id, user_id FROM stores WHERE user_id = $1`
	if err := s.DB.GetContext(ctx, store, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrStoreNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return store, nil
}

// StoreExists проверяет наличие магазина с заданным идентификатором.
func (s *Storage) StoreExists(ctx context.Context, storeID int) (bool, error) {
	const op = "storage.StoreExists"

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`
	if err := s.DB.GetContext(ctx, &exists, query, storeID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListStoresForAdmin возвращает магазины со средней оценкой
// по фильтру администратора.
func (s *Storage) ListStoresForAdmin(ctx context.Context, filter models.StoreFilter) ([]*models.StoreListItem, error) {
	const op = "storage.ListStoresForAdmin"

	query, args := buildAdminStoreListQuery(filter)
	items := []*models.StoreListItem{}
	if err := s.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListStoresForUser возвращает магазины со средней оценкой и собственной
// оценкой вызывающего пользователя (nil, если оценки ещё нет).
func (s *Storage) ListStoresForUser(ctx context.Context, callerID int, filter models.StoreFilter) ([]*models.StoreListItem, error) {
	const op = "storage.ListStoresForUser"

	query, args := buildUserStoreListQuery(filter, callerID)
	items := []*models.StoreListItem{}
	if err := s.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
