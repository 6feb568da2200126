package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/model"
	repo_mocks "github.com/idudina/library-service/internal/repository/mocks"
	"github.com/idudina/library-service/pkg/auth"
)

func newAuthService(t *testing.T) (*AuthService, *repo_mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repo_mocks.NewMockRepository(ctrl)
	return NewAuthService(repo, zap.NewNop()), repo
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	validReq := model.SignUpRequest{
		Email:     "ada@library.io",
		Password:  "secret1",
		Name:      "Ada",
		Birthdate: mustDate("1990-05-01"),
		Address: model.Address{
			Street: "1 Main St",
			City:   "Springfield",
			Zip:    "12345",
			State:  "IL",
		},
		PhoneNumber: "+15550100",
	}

	t.Run("ok. defaults to member and hashes password", func(t *testing.T) {
		t.Parallel()
		svc, repo := newAuthService(t)

		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
				require.Equal(t, model.RoleMember, u.Role)
				require.NotEqual(t, validReq.Password, u.PasswordHash)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(validReq.Password)))
				u.ID = 1
				return u, nil
			})

		user, err := svc.Register(context.Background(), validReq)
		require.NoError(t, err)
		require.Equal(t, 1, user.ID)
		require.Equal(t, model.RoleMember, user.Role)
	})

	t.Run("err. incomplete address names the missing keys", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAuthService(t)

		req := validReq
		req.Address = model.Address{Street: "1 Main St", City: "Springfield"}

		_, err := svc.Register(context.Background(), req)
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
		require.EqualError(t, err, "address must contain the keys: zip, state")
	})

	t.Run("err. duplicate email from repository", func(t *testing.T) {
		t.Parallel()
		svc, repo := newAuthService(t)

		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(model.User{}, errs.FieldValidation("email", "has already been taken"))

		_, err := svc.Register(context.Background(), validReq)
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{
		ID:           1,
		Email:        "ada@library.io",
		PasswordHash: string(hash),
		Role:         model.RoleLibrarian,
	}

	t.Run("ok. token carries the identity", func(t *testing.T) {
		t.Parallel()
		svc, repo := newAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp, err := svc.Login(context.Background(), model.LoginRequest{Email: user.Email, Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		claims, err := auth.ParseToken(resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, 1, claims.Profile.UserID)
		require.Equal(t, auth.RoleLibrarian, claims.Profile.Role)
		require.Equal(t, resp.ExpiresIn, claims.ExpiresAt.Unix())
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo := newAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), model.LoginRequest{Email: user.Email, Password: "wrong-1"})
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("err. unknown email", func(t *testing.T) {
		t.Parallel()
		svc, repo := newAuthService(t)

		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "ghost@library.io").
			Return(model.User{}, errors.Wrap(errs.ErrNotFound, "user"))

		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@library.io", Password: "secret1"})
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
