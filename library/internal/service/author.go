package service

import (
	"context"

	"github.com/2ntng/library-management/library/internal/model"
)

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateAuthors(ctx, authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *Service) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.Author{}, err
	}
	authors := []model.Author{author}
	if err := s.populateAuthors(ctx, authors); err != nil {
		return model.Author{}, err
	}
	return authors[0], nil
}

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, req)
}

func (s *Service) UpdateAuthor(ctx context.Context, id string, req model.AuthorRequest) (model.Author, error) {
	return s.repo.UpdateAuthor(ctx, id, req)
}

func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) SearchAuthors(ctx context.Context, keyword string) ([]model.Author, error) {
	authors, err := s.repo.SearchAuthors(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if err := s.populateAuthors(ctx, authors); err != nil {
		return nil, err
	}
	return authors, nil
}
