package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-rating/internal/models"
	"github.com/magabrotheeeer/store-rating/internal/storage/repository"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) StoreExists(ctx context.Context, storeID int) (bool, error) {
	args := m.Called(ctx, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *RepositoryMock) UpsertRating(ctx context.Context, userID, storeID, rating int) (*models.Rating, error) {
	args := m.Called(ctx, userID, storeID, rating)
	if res := args.Get(0); res != nil {
		return res.(*models.Rating), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Submit(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		rating    int
		setupMock func(m *RepositoryMock)
		wantErr   error
	}{
		{
			name:   "valid rating is upserted",
			rating: 4,
			setupMock: func(m *RepositoryMock) {
				m.On("StoreExists", mock.Anything, 10).Return(true, nil).Once()
				m.On("UpsertRating", mock.Anything, 1, 10, 4).Return(&models.Rating{
					ID: 5, UserID: 1, StoreID: 10, Rating: 4,
					CreatedAt: now, UpdatedAt: now,
				}, nil).Once()
			},
		},
		{
			name:      "zero rating rejected before any query",
			rating:    0,
			setupMock: func(_ *RepositoryMock) {},
			wantErr:   ErrRatingOutOfRange,
		},
		{
			name:      "rating above range rejected",
			rating:    6,
			setupMock: func(_ *RepositoryMock) {},
			wantErr:   ErrRatingOutOfRange,
		},
		{
			name:   "unknown store",
			rating: 3,
			setupMock: func(m *RepositoryMock) {
				m.On("StoreExists", mock.Anything, 10).Return(false, nil).Once()
			},
			wantErr: repository.ErrStoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepositoryMock)
			tt.setupMock(repo)
			svc := New(repo)

			got, err := svc.Submit(context.Background(), 1, 10, tt.rating)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				repo.AssertNotCalled(t, "UpsertRating")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.rating, got.Rating)
			}
			repo.AssertExpectations(t)
		})
	}
}
