package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/model"
	repo_mocks "github.com/idudina/library-service/internal/repository/mocks"
	"github.com/idudina/library-service/pkg/cache"
)

func newDashboardService(t *testing.T) (*DashboardService, *repo_mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repo_mocks.NewMockRepository(ctrl)
	svc := NewDashboardService(repo, cache.NewMemory(), zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestDashboardService_Librarian_CachesSubqueries(t *testing.T) {
	t.Parallel()
	svc, repo := newDashboardService(t)
	ctx := context.Background()
	today := mustDate("2026-09-01")

	// each repo query runs once; the second call is served from the cache
	repo.EXPECT().CountCopies(gomock.Any()).Return(12, nil).Times(1)
	repo.EXPECT().ReservationStats(gomock.Any(), today).
		Return(model.ReservationStats{BorrowedCount: 4, DueTodayCount: 1}, nil).Times(1)
	repo.EXPECT().OverdueMembers(gomock.Any(), today, 50).
		Return([]model.OverdueMember{{ID: 7, Name: "Ada", Email: "ada@library.io"}}, nil).Times(1)

	want := model.LibrarianDashboard{
		TotalBooks:         12,
		TotalBorrowedBooks: 4,
		BooksDueToday:      1,
		OverdueMembers:     []model.OverdueMember{{ID: 7, Name: "Ada", Email: "ada@library.io"}},
	}

	got, err := svc.Librarian(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = svc.Librarian(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDashboardService_Member_CachesSubqueries(t *testing.T) {
	t.Parallel()
	svc, repo := newDashboardService(t)
	ctx := context.Background()
	today := mustDate("2026-09-01")

	current := []model.MemberReservation{
		{ID: 1, ReturnDate: mustDate("2026-09-10"), SerialNumber: "SN-1", Title: "Dune", Author: "Frank Herbert"},
	}
	overdue := []model.MemberReservation{
		{ID: 2, ReturnDate: mustDate("2026-08-20"), SerialNumber: "SN-2", Title: "Dune", Author: "Frank Herbert"},
	}

	repo.EXPECT().MemberActiveNotOverdue(gomock.Any(), 7, today, 20).Return(current, nil).Times(1)
	repo.EXPECT().MemberActiveOverdue(gomock.Any(), 7, today, 20).Return(overdue, nil).Times(1)
	repo.EXPECT().MemberRecentHistory(gomock.Any(), 7, 10).Return([]model.MemberReservation{}, nil).Times(1)

	want := model.MemberDashboard{
		ActiveNotOverdueReservations: current,
		ActiveOverdueReservations:    overdue,
		RecentReservationHistory:     []model.MemberReservation{},
	}

	got, err := svc.Member(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = svc.Member(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// brokenCache fails every operation so Fetch has to fall through.
type brokenCache struct{ err error }

func (b brokenCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, b.err }
func (b brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return b.err
}

func TestDashboardService_Librarian_CacheFailureDegrades(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repo_mocks.NewMockRepository(ctrl)
	svc := NewDashboardService(repo, brokenCache{err: context.DeadlineExceeded}, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	today := mustDate("2026-09-01")

	repo.EXPECT().CountCopies(gomock.Any()).Return(12, nil).Times(2)
	repo.EXPECT().ReservationStats(gomock.Any(), today).
		Return(model.ReservationStats{}, nil).Times(2)
	repo.EXPECT().OverdueMembers(gomock.Any(), today, 50).
		Return([]model.OverdueMember{}, nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := svc.Librarian(context.Background())
		require.NoError(t, err)
		require.Equal(t, 12, got.TotalBooks)
	}
}
