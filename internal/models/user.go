package models

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в ответах API.
type User struct {
	ID           int    `db:"id" json:"id"`           // Уникальный идентификатор пользователя
	Name         string `db:"name" json:"name"`       // Полное имя, от 20 до 60 символов
	Email        string `db:"email" json:"email"`     // Электронная почта (уникальная)
	PasswordHash string `db:"password_hash" json:"-"` // bcrypt-хэш пароля
	Address      string `db:"address" json:"address"` // Адрес, до 400 символов
	Role         Role   `db:"role" json:"role"`       // Роль пользователя
}
