package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("email", "password_hash", "role", "name", "birthdate", "address", "phone_number").
		Values(user.Email, user.PasswordHash, user.Role, user.Name, user.Birthdate, user.Address, user.PhoneNumber).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateUser", zap.String("q", query))
		return model.User{}, translatePgError(err)
	}
	return created, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select("id", "email", "password_hash", "role", "name", "birthdate", "address", "phone_number", "created_at", "updated_at").
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		return model.User{}, errors.Wrap(notFoundOnNoRows(err), "user")
	}
	return user, nil
}
