package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/idudina/library-service/internal/errs"
	service_mocks "github.com/idudina/library-service/internal/handler/mocks"
	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/pkg/validate"
)

func TestHandler_SignUp(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"ada@library.io","password":"secret1","name":"Ada","birthdate":"1990-05-01","address":{"street":"1 Main St","city":"Springfield","zip":"12345","state":"IL"},"phoneNumber":"+15550100"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.User{
						ID:        1,
						Email:     "ada@library.io",
						Role:      model.RoleMember,
						Name:      "Ada",
						Birthdate: mustDate("1990-05-01"),
						Address: model.Address{
							Street: "1 Main St",
							City:   "Springfield",
							Zip:    "12345",
							State:  "IL",
						},
						PhoneNumber: "+15550100",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"email":"ada@library.io","role":"member","name":"Ada","birthdate":"1990-05-01","address":{"street":"1 Main St","city":"Springfield","zip":"12345","state":"IL"},"phoneNumber":"+15550100","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. incomplete address",
			body: `{"email":"ada@library.io","password":"secret1","name":"Ada","birthdate":"1990-05-01","address":{"street":"1 Main St","city":"Springfield"},"phoneNumber":"+15550100"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.FieldValidation("address", "must contain the keys: zip, state"))
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"address must contain the keys: zip, state"}`,
			},
		},
		{
			name: "err. duplicate email",
			body: `{"email":"ada@library.io","password":"secret1","name":"Ada","birthdate":"1990-05-01","address":{"street":"1 Main St","city":"Springfield","zip":"12345","state":"IL"},"phoneNumber":"+15550100"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.FieldValidation("email", "has already been taken"))
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"email has already been taken"}`,
			},
		},
		{
			name:         "err. invalid email",
			body:         `{"email":"not-an-email","password":"secret1","name":"Ada","birthdate":"1990-05-01","phoneNumber":"+15550100"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'SignUpRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/signup", h.SignUp)

			r := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.auth)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"ada@library.io","password":"secret1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Email: "ada@library.io", Password: "secret1"}).
					Return(model.AuthResponse{AccessToken: "token", ExpiresIn: 1756684800}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"accessToken":"token","expiresIn":1756684800}`,
			},
		},
		{
			name: "err. wrong password",
			body: `{"email":"ada@library.io","password":"wrong-1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Email: "ada@library.io", Password: "wrong-1"}).
					Return(model.AuthResponse{}, errs.ErrUnauthenticated)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid credentials"}`,
			},
		},
		{
			name:         "err. missing password",
			body:         `{"email":"ada@library.io"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'LoginRequest.Password' Error:Field validation for 'Password' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.auth)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
