package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/events"
	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/internal/repository"
)

// ReservationService owns the reservation lifecycle: both the reservation
// row and the copy-availability flip happen inside one repository
// transaction, so readers never observe them out of sync.
type ReservationService struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher events.Publisher
	now       func() time.Time
}

func NewReservationService(repo repository.Repository, publisher events.Publisher, log *zap.Logger) *ReservationService {
	return &ReservationService{
		log:       log,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateReservation reserves a copy for the user. The user defaults to the
// caller when the request does not name one; the due date must be strictly
// in the future.
func (s *ReservationService) CreateReservation(ctx context.Context, callerID int, req model.CreateReservationRequest) (model.Reservation, error) {
	userID := callerID
	if req.UserID != nil {
		userID = *req.UserID
	}

	today := model.NewDate(s.now())
	if !req.ReturnDate.After(today.Time) {
		return model.Reservation{}, errs.FieldValidation("return date", "must be in the future")
	}

	rsv, err := s.repo.CreateReservation(ctx, userID, req)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publisher.ReservationCreated(rsv)
	return rsv, nil
}

// ReturnReservation ends an active reservation and releases its copy.
func (s *ReservationService) ReturnReservation(ctx context.Context, id int) (model.Reservation, error) {
	rsv, err := s.repo.ReturnReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publisher.ReservationReturned(rsv)
	return rsv, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, filter model.ReservationFilter, page, size int) (model.ListReservations, error) {
	return s.repo.ListReservations(ctx, filter, page, size)
}

func (s *ReservationService) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}
