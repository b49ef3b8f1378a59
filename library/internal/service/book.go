package service

import (
	"context"

	"github.com/2ntng/library-management/library/internal/model"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateBooks(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	books := []model.Book{book}
	if err := s.populateBooks(ctx, books); err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id string, req model.BookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) SearchBooks(ctx context.Context, keyword string) ([]model.Book, error) {
	books, err := s.repo.SearchBooks(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if err := s.populateBooks(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.AvailableBooks(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateBooks(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}
