package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
	"github.com/2ntng/library-management/library/internal/service"

	repo_mocks "github.com/2ntng/library-management/library/internal/repository/mocks"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return model.NewDate(d)
}

func TestService_GetBook_PopulatesRelationships(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	borrowDate := date(t, "2026-08-01")

	repo.EXPECT().
		GetBook(gomock.Any(), "b1").
		Return(model.Book{ID: "b1", Title: "1984", AuthorID: "a1", TotalCopies: 2, AvailableCopies: 1}, nil)
	repo.EXPECT().
		AuthorsByIDs(gomock.Any(), []string{"a1"}).
		Return([]model.Author{{ID: "a1", Name: "George Orwell"}}, nil)
	repo.EXPECT().
		LoansByBookIDs(gomock.Any(), []string{"b1"}).
		Return([]model.BorrowedBook{
			{ID: "l1", BookID: "b1", MemberID: "m1", BorrowDate: borrowDate, Status: model.StatusBorrowed},
		}, nil)

	book, err := svc.GetBook(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, book.Author)
	require.Equal(t, "George Orwell", book.Author.Name)
	require.Len(t, book.BorrowedBooks, 1)
	require.Equal(t, "l1", book.BorrowedBooks[0].ID)
}

func TestService_GetBook_DanglingAuthorLeftEmpty(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	repo.EXPECT().
		GetBook(gomock.Any(), "b1").
		Return(model.Book{ID: "b1", Title: "1984", AuthorID: "gone"}, nil)
	repo.EXPECT().
		AuthorsByIDs(gomock.Any(), []string{"gone"}).
		Return(nil, nil)
	repo.EXPECT().
		LoansByBookIDs(gomock.Any(), []string{"b1"}).
		Return(nil, nil)

	book, err := svc.GetBook(context.Background(), "b1")
	require.NoError(t, err)
	require.Nil(t, book.Author)
	require.Empty(t, book.BorrowedBooks)
}

func TestService_GetAuthor_PopulatesBooks(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	repo.EXPECT().
		GetAuthor(gomock.Any(), "a1").
		Return(model.Author{ID: "a1", Name: "George Orwell"}, nil)
	repo.EXPECT().
		BooksByAuthorIDs(gomock.Any(), []string{"a1"}).
		Return([]model.Book{
			{ID: "b1", Title: "1984", AuthorID: "a1"},
			{ID: "b2", Title: "Animal Farm", AuthorID: "a1"},
		}, nil)

	author, err := svc.GetAuthor(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, author.Books, 2)
	require.Equal(t, "1984", author.Books[0].Title)
}

func TestService_BorrowBook(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	borrowDate := date(t, "2026-08-01")
	req := model.BorrowRequest{BookID: "b1", MemberID: "m1", BorrowDate: borrowDate}

	repo.EXPECT().
		BorrowBook(gomock.Any(), req).
		Return(model.BorrowedBook{
			ID: "l1", BookID: "b1", MemberID: "m1",
			BorrowDate: borrowDate, Status: model.StatusBorrowed,
		}, nil)
	repo.EXPECT().
		BooksByIDs(gomock.Any(), []string{"b1"}).
		Return([]model.Book{{ID: "b1", Title: "1984"}}, nil)
	repo.EXPECT().
		MembersByIDs(gomock.Any(), []string{"m1"}).
		Return([]model.Member{{ID: "m1", Name: "Winston Smith"}}, nil)

	loan, err := svc.BorrowBook(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, model.StatusBorrowed, loan.Status)
	require.NotNil(t, loan.Book)
	require.Equal(t, "1984", loan.Book.Title)
	require.NotNil(t, loan.Member)
	require.Equal(t, "Winston Smith", loan.Member.Name)
}

func TestService_BorrowBook_NoCopies(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	req := model.BorrowRequest{BookID: "b1", MemberID: "m1", BorrowDate: date(t, "2026-08-01")}
	repo.EXPECT().
		BorrowBook(gomock.Any(), req).
		Return(model.BorrowedBook{}, errs.ErrNoCopies)

	_, err := svc.BorrowBook(context.Background(), req)
	require.ErrorIs(t, err, errs.ErrNoCopies)
}

func TestService_ListLoans_Empty(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	// no loans means no hydration lookups at all
	repo.EXPECT().
		ListLoans(gomock.Any(), nil, nil).
		Return(nil, nil)

	loans, err := svc.ListLoans(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, loans)
}
