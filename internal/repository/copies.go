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

func (r *repository) ListCopies(ctx context.Context, bookID, page, size int) (model.ListCopies, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`select exists(select 1 from `+booksTableName+` where id = $1)`, bookID); err != nil {
		return model.ListCopies{}, err
	}
	if !exists {
		return model.ListCopies{}, errors.Wrap(errs.ErrNotFound, "book")
	}

	q := qb.Select("id", "book_id", "serial_number", "available", "created_at", "updated_at").
		From(bookCopiesTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("serial_number")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListCopies{}, err
	}

	var copies []model.BookCopy
	if err := r.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return model.ListCopies{}, err
	}

	return model.ListCopies{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(copies),
		},
		Items: copies,
	}, nil
}

func (r *repository) GetCopy(ctx context.Context, id int) (model.BookCopy, error) {
	return r.getCopy(ctx, sq.Eq{"id": id})
}

func (r *repository) GetCopyForBook(ctx context.Context, bookID, id int) (model.BookCopy, error) {
	return r.getCopy(ctx, sq.Eq{"id": id, "book_id": bookID})
}

func (r *repository) getCopy(ctx context.Context, where sq.Eq) (model.BookCopy, error) {
	query, args, err := qb.Select("id", "book_id", "serial_number", "available", "created_at", "updated_at").
		From(bookCopiesTableName).
		Where(where).
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}

	var copy model.BookCopy
	if err := r.db.GetContext(ctx, &copy, query, args...); err != nil {
		return model.BookCopy{}, errors.Wrap(notFoundOnNoRows(err), "book copy")
	}
	return copy, nil
}

func (r *repository) CreateCopy(ctx context.Context, bookID int, serialNumber string) (model.BookCopy, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`select exists(select 1 from `+booksTableName+` where id = $1)`, bookID); err != nil {
		return model.BookCopy{}, err
	}
	if !exists {
		return model.BookCopy{}, errors.Wrap(errs.ErrNotFound, "book")
	}

	query, args, err := qb.Insert(bookCopiesTableName).
		Columns("book_id", "serial_number", "available").
		Values(bookID, serialNumber, true).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}

	var copy model.BookCopy
	if err := r.db.GetContext(ctx, &copy, query, args...); err != nil {
		r.log.Error("CreateCopy", zap.String("q", query), zap.Any("args", args))
		return model.BookCopy{}, translatePgError(err)
	}
	return copy, nil
}

func (r *repository) UpdateCopySerial(ctx context.Context, id int, serialNumber string) (model.BookCopy, error) {
	query, args, err := qb.Update(bookCopiesTableName).
		Set("serial_number", serialNumber).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}

	var copy model.BookCopy
	if err := r.db.GetContext(ctx, &copy, query, args...); err != nil {
		return model.BookCopy{}, errors.Wrap(notFoundOnNoRows(translatePgError(err)), "book copy")
	}
	return copy, nil
}

// MarkCopyAvailable flips a copy to available. Rejected while any active
// reservation still covers the copy.
func (r *repository) MarkCopyAvailable(ctx context.Context, id int) (model.BookCopy, error) {
	var copy model.BookCopy
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &copy,
			`select id, book_id, serial_number, available, created_at, updated_at
			from `+bookCopiesTableName+` where id = $1 for update`, id); err != nil {
			return errors.Wrap(notFoundOnNoRows(err), "book copy")
		}

		var hasActive bool
		if err := tx.GetContext(ctx, &hasActive,
			`select exists(select 1 from `+reservationsTableName+` where book_copy_id = $1 and returned_at is null)`, id); err != nil {
			return err
		}
		if hasActive {
			return errs.Validation("cannot mark as available while there are active reservations")
		}

		return tx.GetContext(ctx, &copy,
			`update `+bookCopiesTableName+` set available = true, updated_at = now() where id = $1 returning *`, id)
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return copy, nil
}

// MarkCopyUnavailable flips a copy to unavailable through the manual path.
// Rejected when the copy is the last available one of its book; the
// reservation path deliberately skips this guard (see CreateReservation).
func (r *repository) MarkCopyUnavailable(ctx context.Context, id int) (model.BookCopy, error) {
	var copy model.BookCopy
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &copy,
			`select id, book_id, serial_number, available, created_at, updated_at
			from `+bookCopiesTableName+` where id = $1 for update`, id); err != nil {
			return errors.Wrap(notFoundOnNoRows(err), "book copy")
		}

		var availableCount int
		if err := tx.GetContext(ctx, &availableCount,
			`select count(*) from `+bookCopiesTableName+` where book_id = $1 and available`, copy.BookID); err != nil {
			return err
		}
		if availableCount == 1 {
			return errs.Validation("cannot mark as unavailable while there are available copies")
		}

		return tx.GetContext(ctx, &copy,
			`update `+bookCopiesTableName+` set available = false, updated_at = now() where id = $1 returning *`, id)
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return copy, nil
}

func (r *repository) DeleteCopy(ctx context.Context, id int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists(select 1 from `+bookCopiesTableName+` where id = $1)`, id); err != nil {
			return err
		}
		if !exists {
			return errors.Wrap(errs.ErrNotFound, "book copy")
		}

		var hasActive bool
		if err := tx.GetContext(ctx, &hasActive,
			`select exists(select 1 from `+reservationsTableName+` where book_copy_id = $1 and returned_at is null)`, id); err != nil {
			return err
		}
		if hasActive {
			return errs.Validation("cannot delete book copy with active reservations")
		}

		// ended reservations cascade with the copy
		_, err := tx.ExecContext(ctx, `delete from `+bookCopiesTableName+` where id = $1`, id)
		return err
	})
}
