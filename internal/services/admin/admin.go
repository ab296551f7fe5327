// Package admin содержит бизнес-логику административных операций:
// создание пользователей любой роли, списки пользователей и магазинов,
// счётчики для панели.
package admin

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/store-rating/internal/lib/password"
	"github.com/magabrotheeeer/store-rating/internal/models"
)

// Repository описывает контракт хранилища для административных операций.
type Repository interface {
	// CreateUserWithStore сохраняет пользователя и, для роли store_owner,
	// связанный магазин в одной транзакции.
	CreateUserWithStore(ctx context.Context, user models.User) (*models.User, error)

	// ListUsers возвращает пользователей по фильтру.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)

	// ListStoresForAdmin возвращает магазины со средней оценкой по фильтру.
	ListStoresForAdmin(ctx context.Context, filter models.StoreFilter) ([]*models.StoreListItem, error)

	// CountStats возвращает счётчики пользователей, магазинов и оценок.
	CountStats(ctx context.Context) (*models.Stats, error)
}

// Service реализует административные операции поверх хранилища.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateUser создаёт пользователя с указанной ролью. Для роли store_owner
// вместе с пользователем атомарно создаётся запись магазина.
func (s *Service) CreateUser(ctx context.Context, name, email, address, rawPassword string, role models.Role) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Address:      address,
		Role:         role,
	}
	created, err := s.repo.CreateUserWithStore(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("admin created user",
		slog.Int("id", created.ID), slog.String("role", created.Role.String()))
	return created, nil
}

// ListUsers возвращает пользователей по фильтру администратора.
func (s *Service) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, filter)
}

// ListStores возвращает магазины со средней оценкой по фильтру администратора.
func (s *Service) ListStores(ctx context.Context, filter models.StoreFilter) ([]*models.StoreListItem, error) {
	return s.repo.ListStoresForAdmin(ctx, filter)
}

// Stats возвращает счётчики для административной панели.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	return s.repo.CountStats(ctx)
}
