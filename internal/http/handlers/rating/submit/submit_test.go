package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/models"
	"github.com/magabrotheeeer/store-rating/internal/storage/repository"
)

// Мок сервиса оценок
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Submit(ctx context.Context, userID, storeID, ratingValue int) (*models.Rating, error) {
	args := m.Called(ctx, userID, storeID, ratingValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSubmitHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		withUserID     bool
		mockRating     *models.Rating
		mockErr        error
		callMock       bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:        "valid rating",
			requestBody: Request{StoreID: 3, Rating: 4},
			withUserID:  true,
			mockRating: &models.Rating{
				ID:      10,
				UserID:  7,
				StoreID: 3,
				Rating:  4,
			},
			callMock:       true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "missing token context",
			requestBody:    Request{StoreID: 3, Rating: 4},
			withUserID:     false,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "authorization token required",
			wantStatus:     "Error",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withUserID:     true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "rating above range",
			requestBody:    Request{StoreID: 3, Rating: 6},
			withUserID:     true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Rating must be at most 5",
			wantStatus:     "Error",
		},
		{
			name:           "store not found",
			requestBody:    Request{StoreID: 99, Rating: 4},
			withUserID:     true,
			mockErr:        repository.ErrStoreNotFound,
			callMock:       true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "store not found",
			wantStatus:     "Error",
		},
		{
			name:           "internal error",
			requestBody:    Request{StoreID: 3, Rating: 4},
			withUserID:     true,
			mockErr:        errors.New("db down"),
			callMock:       true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "internal server error",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.callMock {
				serviceMock.On("Submit", mock.Anything, 7, mock.Anything, mock.Anything).
					Return(tt.mockRating, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUserID {
				ctx = context.WithValue(ctx, middlewarectx.UserID, 7)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "rating submitted successfully", data["message"])

				gotRating, ok := data["rating"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, float64(4), gotRating["rating"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
