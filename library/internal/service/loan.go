package service

import (
	"context"
	"time"

	"github.com/2ntng/library-management/library/internal/model"
)

func (s *Service) ListLoans(ctx context.Context, from, to *time.Time) ([]model.BorrowedBook, error) {
	loans, err := s.repo.ListLoans(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Service) GetLoan(ctx context.Context, id string) (model.BorrowedBook, error) {
	loan, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	loans := []model.BorrowedBook{loan}
	if err := s.populateLoans(ctx, loans); err != nil {
		return model.BorrowedBook{}, err
	}
	return loans[0], nil
}

// BorrowBook creates a loan, taking one available copy of the book.
func (s *Service) BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowedBook, error) {
	loan, err := s.repo.BorrowBook(ctx, req)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	s.publishLoanEvent(eventBorrowed, loan)

	loans := []model.BorrowedBook{loan}
	if err := s.populateLoans(ctx, loans); err != nil {
		return model.BorrowedBook{}, err
	}
	return loans[0], nil
}

// ReturnBook completes an outstanding loan. A loan that is already returned
// surfaces as not found, so double returns stay no-ops.
func (s *Service) ReturnBook(ctx context.Context, id string) (model.BorrowedBook, error) {
	loan, err := s.repo.ReturnBook(ctx, id)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	s.publishLoanEvent(eventReturned, loan)

	loans := []model.BorrowedBook{loan}
	if err := s.populateLoans(ctx, loans); err != nil {
		return model.BorrowedBook{}, err
	}
	return loans[0], nil
}

func (s *Service) UpdateLoan(ctx context.Context, id string, req model.LoanUpdateRequest) (model.BorrowedBook, error) {
	return s.repo.UpdateLoan(ctx, id, req)
}

func (s *Service) DeleteLoan(ctx context.Context, id string) error {
	return s.repo.DeleteLoan(ctx, id)
}

func (s *Service) SearchLoans(ctx context.Context, keyword string) ([]model.BorrowedBook, error) {
	loans, err := s.repo.SearchLoans(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Service) ActiveLoans(ctx context.Context) ([]model.BorrowedBook, error) {
	loans, err := s.repo.ActiveLoans(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Service) OverdueLoans(ctx context.Context) ([]model.BorrowedBook, error) {
	loans, err := s.repo.OverdueLoans(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Service) LoansByMember(ctx context.Context, memberID string) ([]model.BorrowedBook, error) {
	loans, err := s.repo.LoansByMemberIDs(ctx, []string{memberID})
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Service) LoansByBook(ctx context.Context, bookID string) ([]model.BorrowedBook, error) {
	loans, err := s.repo.LoansByBookIDs(ctx, []string{bookID})
	if err != nil {
		return nil, err
	}
	if err := s.populateLoans(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}
