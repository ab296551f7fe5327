// Package list реализует список магазинов для обычного пользователя.
// Каждая строка включает средний рейтинг и собственную оценку вызывающего,
// если он её оставлял.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/http/response"
	"github.com/magabrotheeeer/store-rating/internal/lib/sl"
	"github.com/magabrotheeeer/store-rating/internal/models"
)

// Service описывает интерфейс получения магазинов для пользователя.
type Service interface {
	ListForUser(ctx context.Context, callerID int, filter models.StoreFilter) ([]*models.StoreListItem, error)
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
// @Summary Список магазинов
// @Description Возвращает магазины со средним рейтингом и оценкой вызывающего.
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param name query string false "Фильтр по названию (подстрока)"
// @Param address query string false "Фильтр по адресу (подстрока)"
// @Param sortBy query string false "Колонка сортировки: name, address, rating"
// @Param sortOrder query string false "Направление: asc или desc"
// @Success 200 {object} response.Response "Список магазинов"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /stores [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.store.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	callerID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authorization token required"))
		return
	}

	q := r.URL.Query()
	filter := models.StoreFilter{
		Name:      q.Get("name"),
		Address:   q.Get("address"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	stores, err := h.service.ListForUser(r.Context(), callerID, filter)
	if err != nil {
		log.Error("failed to list stores", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(stores))
}
