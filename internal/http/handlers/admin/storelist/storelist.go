// Package storelist реализует список магазинов для администратора.
// В отличие от пользовательского списка, здесь доступны фильтр по email
// и сортировка по нему.
package storelist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-rating/internal/http/response"
	"github.com/magabrotheeeer/store-rating/internal/lib/sl"
	"github.com/magabrotheeeer/store-rating/internal/models"
)

// Service описывает интерфейс получения магазинов для администратора.
type Service interface {
	ListStores(ctx context.Context, filter models.StoreFilter) ([]*models.StoreListItem, error)
}

// Handler обрабатывает запросы списка магазинов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список магазинов для администратора
// @Description Возвращает магазины со средним рейтингом, с фильтрами и сортировкой.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param name query string false "Фильтр по названию (подстрока)"
// @Param email query string false "Фильтр по email (подстрока)"
// @Param address query string false "Фильтр по адресу (подстрока)"
// @Param sortBy query string false "Колонка сортировки: name, email, address, rating"
// @Param sortOrder query string false "Направление: asc или desc"
// @Success 200 {object} response.Response "Список магазинов"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/stores [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.storelist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.StoreFilter{
		Name:      q.Get("name"),
		Email:     q.Get("email"),
		Address:   q.Get("address"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	stores, err := h.service.ListStores(r.Context(), filter)
	if err != nil {
		log.Error("failed to list stores", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(stores))
}
