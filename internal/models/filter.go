package models

// StoreFilter — параметры фильтрации и сортировки списка магазинов.
// Текстовые фильтры применяются как регистронезависимое частичное совпадение.
// SortBy и SortOrder проверяются по белому списку на уровне хранилища.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
}

// UserFilter — параметры фильтрации и сортировки списка пользователей.
// Role фильтруется точным совпадением, остальные поля — частичным.
type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      string
	SortBy    string
	SortOrder string
}

// Stats — счётчики записей для административной панели.
type Stats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalStores  int `json:"totalStores"`
	TotalRatings int `json:"totalRatings"`
}
