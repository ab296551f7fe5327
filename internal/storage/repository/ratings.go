package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// UpsertRating атомарно вставляет или перезаписывает оценку пары
// (user_id, store_id). Конфликт по уникальному ключу обновляет rating и
// updated_at, created_at остаётся исходным. Одна команда вместо
// чтения-и-записи, поэтому параллельные отправки одной пары не порождают
// дублей и потерянных обновлений.
func (s *Storage) UpsertRating(ctx context.Context, userID, storeID, rating int) (*models.Rating, error) {
	const op = "storage.UpsertRating"

	query := `INSERT INTO ratings (user_id, store_id, rating)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, store_id)
			  DO UPDATE SET rating = EXCLUDED.rating, updated_at = CURRENT_TIMESTAMP
			  RETURNING id, user_id, store_id, rating, created_at, updated_at;`
	result := &models.Rating{}
	if err := s.DB.QueryRowxContext(ctx, query, userID, storeID, rating).StructScan(result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AverageRatingForStore возвращает среднюю оценку магазина, 0 без оценок.
func (s *Storage) AverageRatingForStore(ctx context.Context, storeID int) (float64, error) {
	const op = "storage.AverageRatingForStore"

	var avg float64
	query := `SELECT COALESCE(AVG(rating), 0)::float8 FROM ratings WHERE store_id = $1`
	if err := s.DB.GetContext(ctx, &avg, query, storeID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return avg, nil
}

// ListRatersForStore возвращает пользователей, оценивших магазин,
// отсортированных по дате оценки от новых к старым.
func (s *Storage) ListRatersForStore(ctx context.Context, storeID int) ([]*models.Rater, error) {
	const op = "storage.ListRatersForStore"

	query := `SELECT u.id, u.name, u.email, r.rating, r.created_at
			  FROM ratings r
			  JOIN users u ON r.user_id = u.id
			  WHERE r.store_id = $1
			  ORDER BY r.created_at DESC`
	raters := []*models.Rater{}
	if err := s.DB.SelectContext(ctx, &raters, query, storeID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raters, nil
}
