// Package models содержит доменную модель сервиса рейтинга магазинов:
// пользователей, магазины, оценки и параметры фильтрации списков.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "fmt"

// Role — закрытое перечисление ролей пользователей системы.
// Роль определяет набор доступных пользователю операций.
type Role string

const (
	// RoleAdmin — администратор платформы.
	RoleAdmin Role = "admin"
	// RoleUser — обычный пользователь, может оценивать магазины.
	RoleUser Role = "user"
	// RoleStoreOwner — владелец магазина, видит сводку по своему магазину.
	RoleStoreOwner Role = "store_owner"
)

// ParseRole проверяет строку и возвращает соответствующую роль.
// Любое значение вне перечисления считается ошибкой.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}
