// Package dashboard реализует сводку владельца магазина: средняя оценка
// его магазина и список оценивших пользователей.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/http/response"
	"github.com/magabrotheeeer/store-rating/internal/lib/sl"
	"github.com/magabrotheeeer/store-rating/internal/models"
	"github.com/magabrotheeeer/store-rating/internal/storage/repository"
)

// Service описывает интерфейс сводки владельца.
type Service interface {
	OwnerDashboard(ctx context.Context, ownerID int) (*models.OwnerDashboard, error)
}

// Handler обрабатывает запросы сводки владельца магазина.
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
// @Summary Сводка владельца магазина
// @Description Возвращает среднюю оценку магазина вызывающего и список оценивших.
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "Средняя оценка и оценившие"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "У вызывающего нет магазина"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /store/dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.store.dashboard"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authorization token required"))
		return
	}

	board, err := h.service.OwnerDashboard(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			log.Warn("store not found for owner", slog.Int("user_id", ownerID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("store not found"))
			return
		}
		log.Error("failed to build owner dashboard", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(board))
}
