// Package submit реализует приём оценки магазина. Повторная отправка
// той же парой пользователь-магазин перезаписывает предыдущую оценку.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/http/response"
	"github.com/magabrotheeeer/store-rating/internal/lib/sl"
	"github.com/magabrotheeeer/store-rating/internal/lib/validate"
	"github.com/magabrotheeeer/store-rating/internal/models"
	"github.com/magabrotheeeer/store-rating/internal/services/rating"
	"github.com/magabrotheeeer/store-rating/internal/storage/repository"
)

// Request — входные данные для отправки оценки.
type Request struct {
	StoreID int `json:"storeId" validate:"required"`
	Rating  int `json:"rating" validate:"required,min=1,max=5"`
}

// Service описывает интерфейс бизнес-логики оценок.
type Service interface {
	Submit(ctx context.Context, userID, storeID, ratingValue int) (*models.Rating, error)
}

// Handler обрабатывает запросы отправки оценок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправка оценки магазина
// @Description Сохраняет оценку 1..5; повторная отправка перезаписывает предыдущую.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Магазин и значение оценки"
// @Success 200 {object} response.Response "Оценка сохранена"
// @Failure 400 {object} response.ErrorResponse "Оценка вне диапазона 1..5"
// @Failure 404 {object} response.ErrorResponse "Магазин не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /ratings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rating.submit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authorization token required"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req.StoreID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrRatingOutOfRange):
			log.Warn("rating out of range", slog.Int("rating", req.Rating))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("rating must be between 1 and 5"))
		case errors.Is(err, repository.ErrStoreNotFound):
			log.Warn("store not found", slog.Int("store_id", req.StoreID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("store not found"))
		default:
			log.Error("failed to submit rating", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal server error"))
		}
		return
	}

	log.Info("rating submitted",
		slog.Int("user_id", userID),
		slog.Int("store_id", req.StoreID),
		slog.Int("rating", req.Rating))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "rating submitted successfully",
		"rating":  result,
	}))
}
