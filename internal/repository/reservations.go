package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/model"
)

// CreateReservation inserts the reservation and flips the copy to
// unavailable inside one transaction. The copy row is locked first so two
// concurrent creations cannot both pass the no-active-reservation check;
// the partial unique index on active reservations backs the lock up.
func (r *repository) CreateReservation(ctx context.Context, userID int, req model.CreateReservationRequest) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var copy model.BookCopy
		switch {
		case req.BookCopyID != nil:
			if err := tx.GetContext(ctx, &copy,
				`select id, book_id, serial_number, available, created_at, updated_at
				from `+bookCopiesTableName+` where id = $1 for update`, *req.BookCopyID); err != nil {
				return errors.Wrap(notFoundOnNoRows(err), "book copy")
			}
		case req.BookID != nil:
			// arbitrary available copy of the book
			if err := tx.GetContext(ctx, &copy,
				`select id, book_id, serial_number, available, created_at, updated_at
				from `+bookCopiesTableName+` where book_id = $1 and available
				limit 1 for update`, *req.BookID); err != nil {
				return errors.Wrap(notFoundOnNoRows(err), "available book copy")
			}
		default:
			return errs.FieldValidation("bookCopyId", "or bookId is required")
		}

		var hasActive bool
		if err := tx.GetContext(ctx, &hasActive,
			`select exists(select 1 from `+reservationsTableName+` where book_copy_id = $1 and returned_at is null)`,
			copy.ID); err != nil {
			return err
		}
		if hasActive {
			return errs.Validation("book copy is already reserved")
		}

		query, args, err := qb.Insert(reservationsTableName).
			Columns("user_id", "book_copy_id", "return_date").
			Values(userID, copy.ID, req.ReturnDate).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &rsv, query, args...); err != nil {
			r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args))
			return translatePgError(err)
		}

		// copy goes unavailable in the same transaction as the insert
		_, err = tx.ExecContext(ctx,
			`update `+bookCopiesTableName+` set available = false, updated_at = now() where id = $1`, copy.ID)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

// ReturnReservation ends an active reservation and flips the copy back to
// available in the same transaction.
func (r *repository) ReturnReservation(ctx context.Context, id int) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &rsv,
			`select id, user_id, book_copy_id, return_date, returned_at, created_at, updated_at
			from `+reservationsTableName+` where id = $1 for update`, id); err != nil {
			return errors.Wrap(notFoundOnNoRows(err), "reservation")
		}
		if !rsv.Active() {
			return errs.Validation("book has already been returned")
		}

		// should not occur given the one-active-reservation invariant,
		// checked defensively before the copy goes back to available
		var otherActive bool
		if err := tx.GetContext(ctx, &otherActive,
			`select exists(select 1 from `+reservationsTableName+` where book_copy_id = $1 and returned_at is null and id <> $2)`,
			rsv.BookCopyID, rsv.ID); err != nil {
			return err
		}
		if otherActive {
			return errs.Validation("cannot mark as available while there are active reservations")
		}

		if err := tx.GetContext(ctx, &rsv,
			`update `+reservationsTableName+`
			set returned_at = current_date, updated_at = now()
			where id = $1 returning *`, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`update `+bookCopiesTableName+` set available = true, updated_at = now() where id = $1`, rsv.BookCopyID)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) ListReservations(ctx context.Context, filter model.ReservationFilter, page, size int) (model.ListReservations, error) {
	q := qb.Select("id", "user_id", "book_copy_id", "return_date", "returned_at", "created_at", "updated_at").
		From(reservationsTableName).
		OrderBy("return_date desc")

	if filter.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.Overdue != nil {
		if *filter.Overdue {
			q = q.Where("returned_at is null and return_date < current_date")
		} else {
			q = q.Where("returned_at is null")
		}
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListReservations{}, err
	}

	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListReservations{}, err
	}

	return model.ListReservations{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	query, args, err := qb.Select("id", "user_id", "book_copy_id", "return_date", "returned_at", "created_at", "updated_at").
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}

	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, query, args...); err != nil {
		return model.Reservation{}, errors.Wrap(notFoundOnNoRows(err), "reservation")
	}
	return rsv, nil
}
