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

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	q := qb.Select(
		"b.id", "b.title", "b.author", "b.publisher", "b.edition", "b.year", "b.isbn", "b.genre",
		"b.created_at", "b.updated_at",
		"count(c.id) as total_copies",
		"count(c.id) filter (where c.available) as available_copies",
	).
		From(booksTableName + " b").
		LeftJoin(bookCopiesTableName + " c on c.book_id = b.id").
		GroupBy("b.id").
		OrderBy("b.title")

	if filter.Title != "" {
		q = q.Where(sq.ILike{"b.title": "%" + filter.Title + "%"})
	}
	if filter.Author != "" {
		q = q.Where(sq.ILike{"b.author": "%" + filter.Author + "%"})
	}
	if filter.Genre != "" {
		q = q.Where(sq.ILike{"b.genre": "%" + filter.Genre + "%"})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.BookItem
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "publisher", "edition", "year", "isbn", "genre", "created_at", "updated_at").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, errors.Wrap(notFoundOnNoRows(err), "book")
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "publisher", "edition", "year", "isbn", "genre").
		Values(req.Title, req.Author, req.Publisher, req.Edition, req.Year, req.ISBN, req.Genre).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, translatePgError(err)
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	q := qb.Update(booksTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *")

	if req.Title != nil {
		q = q.Set("title", *req.Title)
	}
	if req.Author != nil {
		q = q.Set("author", *req.Author)
	}
	if req.Publisher != nil {
		q = q.Set("publisher", *req.Publisher)
	}
	if req.Edition != nil {
		q = q.Set("edition", *req.Edition)
	}
	if req.Year != nil {
		q = q.Set("year", *req.Year)
	}
	if req.ISBN != nil {
		q = q.Set("isbn", *req.ISBN)
	}
	if req.Genre != nil {
		q = q.Set("genre", *req.Genre)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, errors.Wrap(notFoundOnNoRows(err), "book")
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists(select 1 from `+booksTableName+` where id = $1)`, id); err != nil {
			return err
		}
		if !exists {
			return errors.Wrap(errs.ErrNotFound, "book")
		}

		var hasActive bool
		q := `
	select exists(
		select 1 from ` + reservationsTableName + ` r
		join ` + bookCopiesTableName + ` c on c.id = r.book_copy_id
		where c.book_id = $1 and r.returned_at is null
	)`
		if err := tx.GetContext(ctx, &hasActive, q, id); err != nil {
			return err
		}
		if hasActive {
			return errs.Validation("cannot delete book with active reservations")
		}

		// copies and their ended reservations go with the book (fk cascade)
		_, err := tx.ExecContext(ctx, `delete from `+booksTableName+` where id = $1`, id)
		return err
	})
}
