package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// books
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	// book copies
	ListCopies(ctx context.Context, bookID, page, size int) (model.ListCopies, error)
	GetCopy(ctx context.Context, id int) (model.BookCopy, error)
	GetCopyForBook(ctx context.Context, bookID, id int) (model.BookCopy, error)
	CreateCopy(ctx context.Context, bookID int, serialNumber string) (model.BookCopy, error)
	UpdateCopySerial(ctx context.Context, id int, serialNumber string) (model.BookCopy, error)
	MarkCopyAvailable(ctx context.Context, id int) (model.BookCopy, error)
	MarkCopyUnavailable(ctx context.Context, id int) (model.BookCopy, error)
	DeleteCopy(ctx context.Context, id int) error

	// reservations
	CreateReservation(ctx context.Context, userID int, req model.CreateReservationRequest) (model.Reservation, error)
	ReturnReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context, filter model.ReservationFilter, page, size int) (model.ListReservations, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)

	// users
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	// dashboard projections
	CountCopies(ctx context.Context) (int, error)
	ReservationStats(ctx context.Context, today model.Date) (model.ReservationStats, error)
	OverdueMembers(ctx context.Context, today model.Date, limit int) ([]model.OverdueMember, error)
	MemberActiveNotOverdue(ctx context.Context, userID int, today model.Date, limit int) ([]model.MemberReservation, error)
	MemberActiveOverdue(ctx context.Context, userID int, today model.Date, limit int) ([]model.MemberReservation, error)
	MemberRecentHistory(ctx context.Context, userID, limit int) ([]model.MemberReservation, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	bookCopiesTableName   = `book_copies`
	reservationsTableName = `reservations`
	usersTableName        = `users`

	uniqSerialNumberConstraint      = `uniq_book_copies_serial_number`
	uniqActiveReservationConstraint = `uniq_active_reservation_per_copy`
	uniqUserEmailConstraint         = `uniq_users_email`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Warn("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

// translatePgError maps database constraint violations onto the
// validation taxonomy so callers never see raw driver errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case uniqSerialNumberConstraint:
		return errs.FieldValidation("serial number", "has already been taken")
	case uniqActiveReservationConstraint:
		return errs.Validation("book copy is already reserved")
	case uniqUserEmailConstraint:
		return errs.FieldValidation("email", "has already been taken")
	default:
		return err
	}
}

func notFoundOnNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}
