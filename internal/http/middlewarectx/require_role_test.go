package middlewarectx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/models"
)

func TestRequireRole(t *testing.T) {
	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		role           any
		allowed        []models.Role
		wantStatusCode int
		wantCalled     bool
		wantBody       string
	}{
		{
			name:           "role in allow-list",
			role:           models.RoleAdmin,
			allowed:        []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "one of several allowed roles",
			role:           models.RoleStoreOwner,
			allowed:        []models.Role{models.RoleAdmin, models.RoleStoreOwner},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "authenticated user with wrong role",
			role:           models.RoleUser,
			allowed:        []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
			wantBody:       "access denied",
		},
		{
			name:           "no role in context",
			role:           nil,
			allowed:        []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
			wantBody:       "authorization token required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false

			mw := middlewarectx.RequireRole(newNoopLogger(), tt.allowed...)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserRole, tt.role))
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody),
					"body should contain %q, got %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}
