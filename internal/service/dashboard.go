package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/internal/repository"
	"github.com/idudina/library-service/pkg/cache"
)

const (
	overdueMembersLimit = 50
	memberListLimit     = 20
	historyLimit        = 10

	totalBooksTTL     = time.Hour
	statsTTL          = 10 * time.Minute
	overdueMembersTTL = 10 * time.Minute
	memberListTTL     = 15 * time.Minute
	historyTTL        = time.Hour
)

// DashboardService serves read-only loan summaries. Every sub-query is
// cached independently with its own ttl; the cache is a side channel and
// never authoritative.
type DashboardService struct {
	log   *zap.Logger
	repo  repository.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewDashboardService(repo repository.Repository, c cache.Cache, log *zap.Logger) *DashboardService {
	return &DashboardService{
		log:   log,
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

func (s *DashboardService) Librarian(ctx context.Context) (model.LibrarianDashboard, error) {
	today := model.NewDate(s.now())
	day := today.Format(time.DateOnly)

	totalBooks, err := cache.Fetch(ctx, s.cache, s.log, "dashboard:librarian:total_books", totalBooksTTL,
		func(ctx context.Context) (int, error) {
			return s.repo.CountCopies(ctx)
		})
	if err != nil {
		return model.LibrarianDashboard{}, err
	}

	stats, err := cache.Fetch(ctx, s.cache, s.log,
		fmt.Sprintf("dashboard:librarian:reservation_stats:%s", day), statsTTL,
		func(ctx context.Context) (model.ReservationStats, error) {
			return s.repo.ReservationStats(ctx, today)
		})
	if err != nil {
		return model.LibrarianDashboard{}, err
	}

	overdueMembers, err := cache.Fetch(ctx, s.cache, s.log,
		fmt.Sprintf("dashboard:librarian:overdue_members:%s", day), overdueMembersTTL,
		func(ctx context.Context) ([]model.OverdueMember, error) {
			return s.repo.OverdueMembers(ctx, today, overdueMembersLimit)
		})
	if err != nil {
		return model.LibrarianDashboard{}, err
	}

	return model.LibrarianDashboard{
		TotalBooks:         totalBooks,
		TotalBorrowedBooks: stats.BorrowedCount,
		BooksDueToday:      stats.DueTodayCount,
		OverdueMembers:     overdueMembers,
	}, nil
}

func (s *DashboardService) Member(ctx context.Context, userID int) (model.MemberDashboard, error) {
	today := model.NewDate(s.now())
	day := today.Format(time.DateOnly)

	current, err := cache.Fetch(ctx, s.cache, s.log,
		fmt.Sprintf("dashboard:member:current_books:%d:%s", userID, day), memberListTTL,
		func(ctx context.Context) ([]model.MemberReservation, error) {
			return s.repo.MemberActiveNotOverdue(ctx, userID, today, memberListLimit)
		})
	if err != nil {
		return model.MemberDashboard{}, err
	}

	overdue, err := cache.Fetch(ctx, s.cache, s.log,
		fmt.Sprintf("dashboard:member:overdue_books:%d:%s", userID, day), memberListTTL,
		func(ctx context.Context) ([]model.MemberReservation, error) {
			return s.repo.MemberActiveOverdue(ctx, userID, today, memberListLimit)
		})
	if err != nil {
		return model.MemberDashboard{}, err
	}

	history, err := cache.Fetch(ctx, s.cache, s.log,
		fmt.Sprintf("dashboard:member:history:%d", userID), historyTTL,
		func(ctx context.Context) ([]model.MemberReservation, error) {
			return s.repo.MemberRecentHistory(ctx, userID, historyLimit)
		})
	if err != nil {
		return model.MemberDashboard{}, err
	}

	return model.MemberDashboard{
		ActiveNotOverdueReservations: current,
		ActiveOverdueReservations:    overdue,
		RecentReservationHistory:     history,
	}, nil
}
