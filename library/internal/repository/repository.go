package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id string, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error
	SearchAuthors(ctx context.Context, keyword string) ([]model.Author, error)
	AuthorsByIDs(ctx context.Context, ids []string) ([]model.Author, error)

	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	SearchBooks(ctx context.Context, keyword string) ([]model.Book, error)
	AvailableBooks(ctx context.Context) ([]model.Book, error)
	BooksByIDs(ctx context.Context, ids []string) ([]model.Book, error)
	BooksByAuthorIDs(ctx context.Context, ids []string) ([]model.Book, error)

	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id string) (model.Member, error)
	CreateMember(ctx context.Context, req model.MemberRequest) (model.Member, error)
	UpdateMember(ctx context.Context, id string, req model.MemberRequest) (model.Member, error)
	DeleteMember(ctx context.Context, id string) error
	SearchMembers(ctx context.Context, keyword string) ([]model.Member, error)
	MembersByIDs(ctx context.Context, ids []string) ([]model.Member, error)

	ListLoans(ctx context.Context, from, to *time.Time) ([]model.BorrowedBook, error)
	GetLoan(ctx context.Context, id string) (model.BorrowedBook, error)
	BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowedBook, error)
	UpdateLoan(ctx context.Context, id string, req model.LoanUpdateRequest) (model.BorrowedBook, error)
	ReturnBook(ctx context.Context, id string) (model.BorrowedBook, error)
	DeleteLoan(ctx context.Context, id string) error
	SearchLoans(ctx context.Context, keyword string) ([]model.BorrowedBook, error)
	ActiveLoans(ctx context.Context) ([]model.BorrowedBook, error)
	OverdueLoans(ctx context.Context) ([]model.BorrowedBook, error)
	LoansByBookIDs(ctx context.Context, ids []string) ([]model.BorrowedBook, error)
	LoansByMemberIDs(ctx context.Context, ids []string) ([]model.BorrowedBook, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName = `authors`
	booksTableName   = `books`
	membersTableName = `members`
	loansTableName   = `borrowed_books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// containsAny builds one case-insensitive substring predicate over cols.
func containsAny(keyword string, cols ...string) sq.Or {
	pattern := "%" + keyword + "%"
	or := make(sq.Or, 0, len(cols))
	for _, col := range cols {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}

func joinCols(cols []string) string {
	return strings.Join(cols, ", ")
}

func prefixCols(alias string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, alias+"."+col)
	}
	return out
}

// availableCopiesCheck backs the 0 <= available_copies <= total_copies
// invariant; other check constraints are plain payload validation.
const availableCopiesCheck = "books_available_copies_check"

func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation:
			if pgErr.ConstraintName == availableCopiesCheck {
				return errs.ErrNoCopies
			}
			return errs.ErrInvalidData
		case pgerrcode.ForeignKeyViolation, pgerrcode.UniqueViolation:
			return errs.ErrBadReference
		case pgerrcode.InvalidTextRepresentation:
			// a syntactically invalid uuid can match nothing
			return errs.ErrNotFound
		}
	}
	return err
}
