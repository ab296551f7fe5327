package storerating

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-rating/internal/lib/jwt"
	"github.com/magabrotheeeer/store-rating/internal/models"
	adminservice "github.com/magabrotheeeer/store-rating/internal/services/admin"
	authservice "github.com/magabrotheeeer/store-rating/internal/services/auth"
	ratingservice "github.com/magabrotheeeer/store-rating/internal/services/rating"
	storeservice "github.com/magabrotheeeer/store-rating/internal/services/store"
)

// Заглушка хранилища: реализует контракты всех сервисов
// и возвращает пустые результаты
type storageStub struct{}

func (s *storageStub) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	return &user, nil
}

func (s *storageStub) CreateUserWithStore(_ context.Context, user models.User) (*models.User, error) {
	return &user, nil
}

func (s *storageStub) GetUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return &models.User{}, nil
}

func (s *storageStub) GetUserByID(_ context.Context, _ int) (*models.User, error) {
	return &models.User{}, nil
}

func (s *storageStub) UpdatePasswordHash(_ context.Context, _ int, _ string) error {
	return nil
}

func (s *storageStub) ListUsers(_ context.Context, _ models.UserFilter) ([]*models.User, error) {
	return []*models.User{}, nil
}

func (s *storageStub) CountStats(_ context.Context) (*models.Stats, error) {
	return &models.Stats{}, nil
}

func (s *storageStub) ListStoresForAdmin(_ context.Context, _ models.StoreFilter) ([]*models.StoreListItem, error) {
	return []*models.StoreListItem{}, nil
}

func (s *storageStub) ListStoresForUser(_ context.Context, _ int, _ models.StoreFilter) ([]*models.StoreListItem, error) {
	return []*models.StoreListItem{}, nil
}

func (s *storageStub) GetStoreByUserID(_ context.Context, _ int) (*models.Store, error) {
	return &models.Store{ID: 1, UserID: 1}, nil
}

func (s *storageStub) AverageRatingForStore(_ context.Context, _ int) (float64, error) {
	return 0, nil
}

func (s *storageStub) ListRatersForStore(_ context.Context, _ int) ([]*models.Rater, error) {
	return []*models.Rater{}, nil
}

func (s *storageStub) StoreExists(_ context.Context, _ int) (bool, error) {
	return true, nil
}

func (s *storageStub) UpsertRating(_ context.Context, userID, storeID, rating int) (*models.Rating, error) {
	return &models.Rating{ID: 1, UserID: userID, StoreID: storeID, Rating: rating}, nil
}

func newTestRouter(t *testing.T) (chi.Router, jwt.Maker) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	jwtMaker := jwt.NewJWTMaker("test_secret_key", time.Hour)
	stub := &storageStub{}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker,
		authservice.New(stub, jwtMaker),
		adminservice.New(stub, logger),
		storeservice.New(stub),
		ratingservice.New(stub),
	)
	return router, jwtMaker
}

func TestRegisterRoutes_RoleAccess(t *testing.T) {
	router, jwtMaker := newTestRouter(t)

	tokenFor := func(role models.Role) string {
		token, err := jwtMaker.GenerateToken(1, "user@example.com", role)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		role       models.Role
		withToken  bool
		wantStatus int
	}{
		{
			name:       "stores list open to user role",
			method:     http.MethodGet,
			path:       "/api/v1/stores",
			role:       models.RoleUser,
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "stores list open to admin role",
			method:     http.MethodGet,
			path:       "/api/v1/stores",
			role:       models.RoleAdmin,
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "stores list open to store owner role",
			method:     http.MethodGet,
			path:       "/api/v1/stores",
			role:       models.RoleStoreOwner,
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "stores list requires token",
			method:     http.MethodGet,
			path:       "/api/v1/stores",
			withToken:  false,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "ratings closed to admin role",
			method:     http.MethodPost,
			path:       "/api/v1/ratings",
			body:       `{"storeId":1,"rating":4}`,
			role:       models.RoleAdmin,
			withToken:  true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "ratings open to user role",
			method:     http.MethodPost,
			path:       "/api/v1/ratings",
			body:       `{"storeId":1,"rating":4}`,
			role:       models.RoleUser,
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin dashboard closed to user role",
			method:     http.MethodGet,
			path:       "/api/v1/admin/dashboard",
			role:       models.RoleUser,
			withToken:  true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "owner dashboard closed to user role",
			method:     http.MethodGet,
			path:       "/api/v1/store/dashboard",
			role:       models.RoleUser,
			withToken:  true,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.withToken {
				req.Header.Set("Authorization", "Bearer "+tokenFor(tt.role))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
