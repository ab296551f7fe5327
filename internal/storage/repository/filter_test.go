package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

func TestOrderClause_Whitelist(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{
			name:      "known column ascending by default",
			sortBy:    "email",
			sortOrder: "",
			want:      " ORDER BY u.email ASC",
		},
		{
			name:      "rating maps to aggregate alias",
			sortBy:    "rating",
			sortOrder: "desc",
			want:      " ORDER BY average_rating DESC",
		},
		{
			name:      "direction is case-insensitive",
			sortBy:    "name",
			sortOrder: "DESC",
			want:      " ORDER BY u.name DESC",
		},
		{
			name:      "unknown column falls back to name",
			sortBy:    "password_hash; DROP TABLE users--",
			sortOrder: "asc",
			want:      " ORDER BY u.name ASC",
		},
		{
			name:      "unknown direction falls back to ASC",
			sortBy:    "name",
			sortOrder: "sideways",
			want:      " ORDER BY u.name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderClause(adminStoreSortColumns, tt.sortBy, tt.sortOrder)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildAdminStoreListQuery(t *testing.T) {
	query, args := buildAdminStoreListQuery(models.StoreFilter{
		Name:      "coffee",
		Address:   "main st",
		SortBy:    "rating",
		SortOrder: "desc",
	})

	assert.Contains(t, query, "u.name ILIKE $1")
	assert.Contains(t, query, "u.address ILIKE $2")
	assert.NotContains(t, query, "u.email ILIKE")
	assert.Contains(t, query, "LEFT JOIN ratings r")
	assert.Contains(t, query, "COALESCE(AVG(r.rating), 0)")
	assert.True(t, strings.HasSuffix(query, "ORDER BY average_rating DESC"))
	assert.Equal(t, []any{"%coffee%", "%main st%"}, args)
}

func TestBuildAdminStoreListQuery_NoFilters(t *testing.T) {
	query, args := buildAdminStoreListQuery(models.StoreFilter{})

	assert.Empty(t, args)
	assert.NotContains(t, query, "ILIKE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY u.name ASC"))
}

func TestBuildUserStoreListQuery(t *testing.T) {
	query, args := buildUserStoreListQuery(models.StoreFilter{
		Name: "bakery",
		// фильтр по email в пользовательской выдаче не поддерживается
		Email: "ignored@example.com",
	}, 42)

	assert.Contains(t, query, "ur.user_id = $1")
	assert.Contains(t, query, "ur.rating AS user_rating")
	assert.Contains(t, query, "u.name ILIKE $2")
	assert.NotContains(t, query, "ILIKE $3")
	assert.NotContains(t, query, "u.email")
	assert.Equal(t, []any{42, "%bakery%"}, args)
}

func TestBuildUserStoreListQuery_SortInjectionFallback(t *testing.T) {
	query, _ := buildUserStoreListQuery(models.StoreFilter{
		SortBy:    "1; DELETE FROM ratings",
		SortOrder: "desc) --",
	}, 1)

	assert.True(t, strings.HasSuffix(query, "ORDER BY u.name ASC"))
	assert.NotContains(t, query, "DELETE")
}

func TestBuildUserListQuery(t *testing.T) {
	query, args := buildUserListQuery(models.UserFilter{
		Name:      "ivan",
		Email:     "@example.com",
		Role:      "store_owner",
		SortBy:    "role",
		SortOrder: "DESC",
	})

	assert.Contains(t, query, "name ILIKE $1")
	assert.Contains(t, query, "email ILIKE $2")
	assert.Contains(t, query, "role = $3")
	assert.True(t, strings.HasSuffix(query, "ORDER BY role DESC"))
	assert.Equal(t, []any{"%ivan%", "%@example.com%", "store_owner"}, args)
}

func TestBuildUserListQuery_RoleIsExactMatch(t *testing.T) {
	query, args := buildUserListQuery(models.UserFilter{Role: "admin"})

	assert.Contains(t, query, "role = $1")
	assert.NotContains(t, query, "role ILIKE")
	assert.Equal(t, []any{"admin"}, args)
}
