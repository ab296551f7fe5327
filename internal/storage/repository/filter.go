package repository

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/store-rating/internal/models"
)

// Белые списки колонок сортировки. Значение сортировки из запроса никогда
// не попадает в SQL напрямую: колонка берётся только из этих таблиц
// соответствий, неизвестный ввод откатывается к сортировке по имени.
var (
	adminStoreSortColumns = map[string]string{
		"name":    "u.name",
		"email":   "u.email",
		"address": "u.address",
		"rating":  "average_rating",
	}
	userStoreSortColumns = map[string]string{
		"name":    "u.name",
		"address": "u.address",
		"rating":  "average_rating",
	}
	userSortColumns = map[string]string{
		"name":    "name",
		"email":   "email",
		"address": "address",
		"role":    "role",
	}
)

// orderClause строит ORDER BY по белому списку колонок.
// Направление сортировки принимает только asc/desc без учёта регистра,
// по умолчанию ASC.
func orderClause(allowed map[string]string, sortBy, sortOrder string) string {
	column, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		column = allowed["name"]
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return " ORDER BY " + column + " " + direction
}

// likeCondition добавляет к запросу регистронезависимый частичный фильтр,
// значение всегда передаётся связанным параметром.
func likeCondition(sb *strings.Builder, args *[]any, column, value string) {
	if value == "" {
		return
	}
	*args = append(*args, "%"+value+"%")
	fmt.Fprintf(sb, " AND %s ILIKE $%d", column, len(*args))
}

// buildAdminStoreListQuery строит запрос списка магазинов для администратора:
// фильтры по имени, почте и адресу владельца, средняя оценка через LEFT JOIN.
func buildAdminStoreListQuery(filter models.StoreFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT s.id, u.name, u.email, u.address,
		       COALESCE(AVG(r.rating), 0)::float8 AS average_rating
		  FROM stores s
		  JOIN users u ON s.user_id = u.id
		  LEFT JOIN ratings r ON s.id = r.store_id
		  WHERE 1=1`)

	var args []any
	likeCondition(&sb, &args, "u.name", filter.Name)
	likeCondition(&sb, &args, "u.email", filter.Email)
	likeCondition(&sb, &args, "u.address", filter.Address)

	sb.WriteString(" GROUP BY s.id, u.name, u.email, u.address")
	sb.WriteString(orderClause(adminStoreSortColumns, filter.SortBy, filter.SortOrder))
	return sb.String(), args
}

// buildUserStoreListQuery строит запрос списка магазинов для обычного
// пользователя: дополнительно присоединяется собственная оценка вызывающего,
// NULL если он магазин ещё не оценивал.
func buildUserStoreListQuery(filter models.StoreFilter, callerID int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT s.id, u.name, u.address,
		       COALESCE(AVG(r.rating), 0)::float8 AS average_rating,
		       ur.rating AS user_rating
		  FROM stores s
		  JOIN users u ON s.user_id = u.id
		  LEFT JOIN ratings r ON s.id = r.store_id
		  LEFT JOIN ratings ur ON s.id = ur.store_id AND ur.user_id = $1
		  WHERE 1=1`)

	args := []any{callerID}
	likeCondition(&sb, &args, "u.name", filter.Name)
	likeCondition(&sb, &args, "u.address", filter.Address)

	sb.WriteString(" GROUP BY s.id, u.name, u.address, ur.rating")
	sb.WriteString(orderClause(userStoreSortColumns, filter.SortBy, filter.SortOrder))
	return sb.String(), args
}

// buildUserListQuery строит запрос списка пользователей для администратора:
// частичные фильтры по имени, почте и адресу, точный — по роли.
func buildUserListQuery(filter models.UserFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, email, address, role FROM users WHERE 1=1`)

	var args []any
	likeCondition(&sb, &args, "name", filter.Name)
	likeCondition(&sb, &args, "email", filter.Email)
	likeCondition(&sb, &args, "address", filter.Address)
	if filter.Role != "" {
		args = append(args, filter.Role)
		fmt.Fprintf(&sb, " AND role = $%d", len(args))
	}

	sb.WriteString(orderClause(userSortColumns, filter.SortBy, filter.SortOrder))
	return sb.String(), args
}
