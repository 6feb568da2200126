package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/pkg/auth"
	mw "github.com/idudina/library-service/pkg/middleware"
	"github.com/idudina/library-service/pkg/validate"
)

type Handler struct {
	catalogSvc     CatalogService
	reservationSvc ReservationService
	dashboardSvc   DashboardService
	authSvc        AuthService
	log            *zap.Logger
}

func New(catalogSvc CatalogService, reservationSvc ReservationService, dashboardSvc DashboardService, authSvc AuthService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc:     catalogSvc,
		reservationSvc: reservationSvc,
		dashboardSvc:   dashboardSvc,
		authSvc:        authSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.POST("/signup", h.SignUp)
	api.POST("/login", h.Login)

	librarian := mw.RequireRole(auth.RoleLibrarian)

	sec := api.Group("", mw.JwtAuthentication)
	sec.GET("/dashboard", h.Dashboard)

	sec.GET("/books", h.ListBooks)
	sec.POST("/books", h.CreateBook, librarian)
	sec.GET("/books/:id", h.GetBook)
	sec.PUT("/books/:id", h.UpdateBook, librarian)
	sec.DELETE("/books/:id", h.DeleteBook, librarian)

	sec.GET("/books/:bookId/book_copies", h.ListCopies)
	sec.POST("/books/:bookId/book_copies", h.CreateCopy, librarian)
	sec.PUT("/books/:bookId/book_copies/:id", h.UpdateCopy, librarian)
	sec.DELETE("/books/:bookId/book_copies/:id", h.DeleteCopy, librarian)
	sec.GET("/book_copies/:id", h.GetCopy)

	sec.GET("/reservations", h.ListReservations, librarian)
	sec.GET("/reservations/:id", h.GetReservation, librarian)
	sec.POST("/reservations", h.CreateReservation)
	sec.PATCH("/reservations/:id/return", h.ReturnReservation, librarian)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error taxonomy onto response statuses.
func httpError(err error) *echo.HTTPError {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ve.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func principal(c echo.Context) (auth.Principal, error) {
	return auth.FromContext(c.Request().Context())
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func paging(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	size, _ = strconv.Atoi(c.QueryParam("size"))
	if page < 0 {
		page = 0
	}
	if size < 0 {
		size = 0
	}
	return page, size
}
