package handler

import (
	"context"

	"github.com/idudina/library-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.BookDetail, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	ListCopies(ctx context.Context, bookID, page, size int) (model.ListCopies, error)
	GetCopy(ctx context.Context, id int) (model.CopyDetail, error)
	CreateCopy(ctx context.Context, bookID int, req model.CreateCopyRequest) (model.BookCopy, error)
	UpdateCopy(ctx context.Context, bookID, id int, req model.UpdateCopyRequest) (model.BookCopy, error)
	DeleteCopy(ctx context.Context, bookID, id int) error
}

type ReservationService interface {
	CreateReservation(ctx context.Context, callerID int, req model.CreateReservationRequest) (model.Reservation, error)
	ReturnReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context, filter model.ReservationFilter, page, size int) (model.ListReservations, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
}

type DashboardService interface {
	Librarian(ctx context.Context) (model.LibrarianDashboard, error)
	Member(ctx context.Context, userID int) (model.MemberDashboard, error)
}

type AuthService interface {
	Register(ctx context.Context, req model.SignUpRequest) (model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
}
