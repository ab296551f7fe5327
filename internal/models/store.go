package models

// Store связывает магазин с учётной записью владельца.
// Отображаемые поля магазина (имя, адрес, почта) берутся из записи владельца,
// отдельного профиля у магазина нет.
type Store struct {
	ID     int `db:"id" json:"id"`
	UserID int `db:"user_id" json:"user_id"`
}

// StoreListItem — строка списка магазинов со средней оценкой.
// UserRating заполняется только в выдаче для обычного пользователя и
// остаётся nil, если вызывающий магазин ещё не оценивал.
type StoreListItem struct {
	ID            int     `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Email         string  `db:"email" json:"email,omitempty"`
	Address       string  `db:"address" json:"address"`
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	UserRating    *int    `db:"user_rating" json:"user_rating,omitempty"`
}
