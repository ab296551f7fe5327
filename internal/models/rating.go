package models

import "time"

// Rating — оценка магазина пользователем, уникальна по паре (user_id, store_id).
// Повторная отправка перезаписывает значение и updated_at, created_at не меняется.
type Rating struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	StoreID   int       `db:"store_id" json:"store_id"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Rater — пользователь, оценивший магазин; строка списка в кабинете владельца.
type Rater struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OwnerDashboard — сводка для владельца магазина: средняя оценка
// и список оценивших пользователей, отсортированный по дате оценки.
type OwnerDashboard struct {
	AverageRating float64  `json:"averageRating"`
	RatedBy       []*Rater `json:"ratedBy"`
}
