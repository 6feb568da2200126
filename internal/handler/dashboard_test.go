package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	service_mocks "github.com/idudina/library-service/internal/handler/mocks"
	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/pkg/auth"
	"github.com/idudina/library-service/pkg/validate"
)

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()

	librarian := auth.Principal{UserID: 1, Email: "admin@library.io", Role: auth.RoleLibrarian}
	member := auth.Principal{UserID: 7, Email: "member@library.io", Role: auth.RoleMember}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockDashboardService)

	var tests = []struct {
		name         string
		principal    auth.Principal
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:      "librarian view",
			principal: librarian,
			mockBehavior: func(r *service_mocks.MockDashboardService) {
				r.EXPECT().
					Librarian(gomock.Any()).
					Return(model.LibrarianDashboard{
						TotalBooks:         12,
						TotalBorrowedBooks: 4,
						BooksDueToday:      1,
						OverdueMembers: []model.OverdueMember{
							{ID: 7, Name: "Ada", Email: "ada@library.io"},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"totalBooks":12,"totalBorrowedBooks":4,"booksDueToday":1,"overdueMembers":[{"id":7,"name":"Ada","email":"ada@library.io"}]}`,
			},
		},
		{
			name:      "member view",
			principal: member,
			mockBehavior: func(r *service_mocks.MockDashboardService) {
				r.EXPECT().
					Member(gomock.Any(), member.UserID).
					Return(model.MemberDashboard{
						ActiveNotOverdueReservations: []model.MemberReservation{
							{ID: 1, ReturnDate: mustDate("2026-09-10"), SerialNumber: "SN-1", Title: "Dune", Author: "Frank Herbert"},
						},
						ActiveOverdueReservations: []model.MemberReservation{},
						RecentReservationHistory:  []model.MemberReservation{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"activeNotOverdueReservations":[{"id":1,"returnDate":"2026-09-10","serialNumber":"SN-1","title":"Dune","author":"Frank Herbert"}],"activeOverdueReservations":[],"recentReservationHistory":[]}`,
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
			e.GET("/dashboard", h.Dashboard, withPrincipal(tt.principal))

			r := httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.dashboard)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
