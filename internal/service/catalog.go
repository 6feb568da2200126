package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/internal/repository"
)

// CatalogService manages books and their physical copies, including the
// manual copy-availability transitions.
type CatalogService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewCatalogService(repo repository.Repository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

func (s *CatalogService) ListBooks(ctx context.Context, filter model.BookFilter, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter, page, size)
}

func (s *CatalogService) GetBook(ctx context.Context, id int) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	copies, err := s.repo.ListCopies(ctx, id, 0, 0)
	if err != nil {
		return model.BookDetail{}, err
	}
	return model.BookDetail{Book: book, BookCopies: copies.Items}, nil
}

func (s *CatalogService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *CatalogService) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *CatalogService) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *CatalogService) ListCopies(ctx context.Context, bookID, page, size int) (model.ListCopies, error) {
	return s.repo.ListCopies(ctx, bookID, page, size)
}

func (s *CatalogService) GetCopy(ctx context.Context, id int) (model.CopyDetail, error) {
	copy, err := s.repo.GetCopy(ctx, id)
	if err != nil {
		return model.CopyDetail{}, err
	}
	book, err := s.repo.GetBook(ctx, copy.BookID)
	if err != nil {
		return model.CopyDetail{}, err
	}
	return model.CopyDetail{BookCopy: copy, Book: book}, nil
}

func (s *CatalogService) CreateCopy(ctx context.Context, bookID int, req model.CreateCopyRequest) (model.BookCopy, error) {
	return s.repo.CreateCopy(ctx, bookID, req.SerialNumber)
}

// UpdateCopy changes the serial number and, when requested, the availability
// flag. Availability goes through the guarded transitions so the flag can
// never contradict the reservation state.
func (s *CatalogService) UpdateCopy(ctx context.Context, bookID, id int, req model.UpdateCopyRequest) (model.BookCopy, error) {
	copy, err := s.repo.GetCopyForBook(ctx, bookID, id)
	if err != nil {
		return model.BookCopy{}, err
	}

	if req.SerialNumber != nil {
		if copy, err = s.repo.UpdateCopySerial(ctx, id, *req.SerialNumber); err != nil {
			return model.BookCopy{}, err
		}
	}
	if req.Available != nil && *req.Available != copy.Available {
		if *req.Available {
			copy, err = s.repo.MarkCopyAvailable(ctx, id)
		} else {
			copy, err = s.repo.MarkCopyUnavailable(ctx, id)
		}
		if err != nil {
			return model.BookCopy{}, err
		}
	}
	return copy, nil
}

func (s *CatalogService) DeleteCopy(ctx context.Context, bookID, id int) error {
	if _, err := s.repo.GetCopyForBook(ctx, bookID, id); err != nil {
		return err
	}
	return s.repo.DeleteCopy(ctx, id)
}
