package handler

import (
	"context"
	"time"

	"github.com/2ntng/library-management/library/internal/model"
	"github.com/2ntng/library-management/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type LibraryService interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id string, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error
	SearchAuthors(ctx context.Context, keyword string) ([]model.Author, error)

	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	SearchBooks(ctx context.Context, keyword string) ([]model.Book, error)
	AvailableBooks(ctx context.Context) ([]model.Book, error)

	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id string) (model.Member, error)
	CreateMember(ctx context.Context, req model.MemberRequest) (model.Member, error)
	UpdateMember(ctx context.Context, id string, req model.MemberRequest) (model.Member, error)
	DeleteMember(ctx context.Context, id string) error
	SearchMembers(ctx context.Context, keyword string) ([]model.Member, error)

	ListLoans(ctx context.Context, from, to *time.Time) ([]model.BorrowedBook, error)
	GetLoan(ctx context.Context, id string) (model.BorrowedBook, error)
	BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowedBook, error)
	UpdateLoan(ctx context.Context, id string, req model.LoanUpdateRequest) (model.BorrowedBook, error)
	ReturnBook(ctx context.Context, id string) (model.BorrowedBook, error)
	DeleteLoan(ctx context.Context, id string) error
	SearchLoans(ctx context.Context, keyword string) ([]model.BorrowedBook, error)
	ActiveLoans(ctx context.Context) ([]model.BorrowedBook, error)
	OverdueLoans(ctx context.Context) ([]model.BorrowedBook, error)
	LoansByMember(ctx context.Context, memberID string) ([]model.BorrowedBook, error)
	LoansByBook(ctx context.Context, bookID string) ([]model.BorrowedBook, error)
}

var _ LibraryService = (*service.Service)(nil)
