package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// uniqueViolation — класс ошибок PostgreSQL для нарушения уникальности.
const uniqueViolation = "23505"

// CreateUser сохраняет нового пользователя и возвращает его публичные поля.
// Занятый email транслируется в ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"

	query := `INSERT INTO users (name, email, password_hash, address, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, email, address, role;`
	created := &models.User{}
	err := s.DB.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Address, user.Role).StructScan(created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// CreateUserWithStore сохраняет пользователя и, если роль store_owner,
// связанную запись магазина в одной транзакции: либо обе записи фиксируются,
// либо ни одной.
func (s *Storage) CreateUserWithStore(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUserWithStore"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO users (name, email, password_hash, address, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, email, address, role;`
	created := &models.User{}
	err = tx.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Address, user.Role).StructScan(created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if created.Role == models.RoleStoreOwner {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO stores (user_id) VALUES ($1)`, created.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// GetUserByEmail возвращает пользователя по email, включая хэш пароля.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT id, name, email, password_hash, address, role
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	if err := s.DB.GetContext(ctx, u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *Storage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUserByID"

	query := `SELECT id, name, email, password_hash, address, role
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	if err := s.DB.GetContext(ctx, u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdatePasswordHash заменяет хэш пароля пользователя.
func (s *Storage) UpdatePasswordHash(ctx context.Context, userID int, passwordHash string) error {
	const op = "storage.UpdatePasswordHash"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// ListUsers возвращает пользователей по фильтру администратора.
func (s *Storage) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	const op = "storage.ListUsers"

	query, args := buildUserListQuery(filter)
	users := []*models.User{}
	if err := s.DB.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// CountStats возвращает счётчики пользователей, магазинов и оценок.
func (s *Storage) CountStats(ctx context.Context) (*models.Stats, error) {
	const op = "storage.CountStats"

	stats := &models.Stats{}
	query := `SELECT
			      (SELECT COUNT(*) FROM users) AS total_users,
			      (SELECT COUNT(*) FROM stores) AS total_stores,
			      (SELECT COUNT(*) FROM ratings) AS total_ratings`
	row := s.DB.QueryRowContext(ctx, query)
	if err := row.Scan(&stats.TotalUsers, &stats.TotalStores, &stats.TotalRatings); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}
