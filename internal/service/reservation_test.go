package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/events"
	"github.com/idudina/library-service/internal/model"
	repo_mocks "github.com/idudina/library-service/internal/repository/mocks"
)

func newReservationService(t *testing.T) (*ReservationService, *repo_mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repo_mocks.NewMockRepository(ctrl)
	svc := NewReservationService(repo, events.NewNop(), zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestReservationService_CreateReservation(t *testing.T) {
	t.Parallel()

	copyID := 3
	userID := 9

	tests := []struct {
		name         string
		callerID     int
		req          model.CreateReservationRequest
		mockBehavior func(r *repo_mocks.MockRepository)
		want         model.Reservation
		wantErr      string
	}{
		{
			name:     "defaults to caller",
			callerID: 7,
			req: model.CreateReservationRequest{
				BookCopyID: &copyID,
				ReturnDate: mustDate("2026-09-10"),
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					CreateReservation(gomock.Any(), 7, gomock.Any()).
					Return(model.Reservation{ID: 1, UserID: 7, BookCopyID: 3}, nil)
			},
			want: model.Reservation{ID: 1, UserID: 7, BookCopyID: 3},
		},
		{
			name:     "explicit user wins over caller",
			callerID: 1,
			req: model.CreateReservationRequest{
				UserID:     &userID,
				BookCopyID: &copyID,
				ReturnDate: mustDate("2026-09-10"),
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().
					CreateReservation(gomock.Any(), 9, gomock.Any()).
					Return(model.Reservation{ID: 2, UserID: 9, BookCopyID: 3}, nil)
			},
			want: model.Reservation{ID: 2, UserID: 9, BookCopyID: 3},
		},
		{
			name:     "return date today is rejected",
			callerID: 7,
			req: model.CreateReservationRequest{
				BookCopyID: &copyID,
				ReturnDate: mustDate("2026-09-01"),
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      "return date must be in the future",
		},
		{
			name:     "return date in the past is rejected",
			callerID: 7,
			req: model.CreateReservationRequest{
				BookCopyID: &copyID,
				ReturnDate: mustDate("2020-01-01"),
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      "return date must be in the future",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newReservationService(t)
			tt.mockBehavior(repo)

			got, err := svc.CreateReservation(context.Background(), tt.callerID, tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.True(t, errs.IsValidation(err))
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReservationService_ReturnReservation(t *testing.T) {
	t.Parallel()
	svc, repo := newReservationService(t)

	returnedAt := mustDate("2026-09-01")
	repo.EXPECT().
		ReturnReservation(gomock.Any(), 1).
		Return(model.Reservation{ID: 1, UserID: 7, BookCopyID: 3, ReturnedAt: &returnedAt}, nil)

	got, err := svc.ReturnReservation(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, got.Active())
}

func mustDate(s string) model.Date {
	var d model.Date
	if err := d.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		panic(err)
	}
	return d
}
