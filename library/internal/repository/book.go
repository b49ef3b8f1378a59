package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
)

var bookCols = []string{"id", "title", "category", "publishing_year", "isbn", "total_copies", "available_copies", "author_id"}

type bookRow struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Category        string         `db:"category"`
	PublishingYear  int            `db:"publishing_year"`
	ISBN            string         `db:"isbn"`
	TotalCopies     int            `db:"total_copies"`
	AvailableCopies int            `db:"available_copies"`
	AuthorID        sql.NullString `db:"author_id"`
}

func (b bookRow) toModel() model.Book {
	return model.Book{
		ID:              b.ID,
		Title:           b.Title,
		Category:        b.Category,
		PublishingYear:  b.PublishingYear,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		AuthorID:        b.AuthorID.String,
	}
}

func toBooks(rows []bookRow) []model.Book {
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}
	return books
}

func (r *repository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []bookRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return toBooks(rows), nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, qb.Select(bookCols...).
		From(booksTableName).
		OrderBy("title"))
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var row bookRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, wrapPgErr(err)
	}
	return row.toModel(), nil
}

// initialAvailable: a book enters the shelf fully available unless the
// payload says otherwise.
func initialAvailable(req model.BookRequest) int {
	if req.AvailableCopies != nil {
		return *req.AvailableCopies
	}
	return req.TotalCopies
}

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	available := initialAvailable(req)
	var authorID any
	if req.AuthorID != "" {
		authorID = req.AuthorID
	}

	query, args, err := qb.Insert(booksTableName).
		Columns(bookCols...).
		Values(uuid.NewString(), req.Title, req.Category, req.PublishingYear, req.ISBN, req.TotalCopies, available, authorID).
		Suffix("returning " + joinCols(bookCols)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var row bookRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, wrapPgErr(err)
	}
	return row.toModel(), nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, req model.BookRequest) (model.Book, error) {
	available := initialAvailable(req)
	var authorID any
	if req.AuthorID != "" {
		authorID = req.AuthorID
	}

	query, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("category", req.Category).
		Set("publishing_year", req.PublishingYear).
		Set("isbn", req.ISBN).
		Set("total_copies", req.TotalCopies).
		Set("available_copies", available).
		Set("author_id", authorID).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinCols(bookCols)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var row bookRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, wrapPgErr(err)
	}
	return row.toModel(), nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) SearchBooks(ctx context.Context, keyword string) ([]model.Book, error) {
	return r.selectBooks(ctx, qb.Select(prefixCols("b", bookCols)...).
		From(booksTableName+" b").
		LeftJoin(authorsTableName+" a on a.id = b.author_id").
		Where(containsAny(keyword, "b.title", "b.category", "a.name")).
		OrderBy("b.title"))
}

func (r *repository) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Gt{"available_copies": 0}).
		OrderBy("title"))
}

func (r *repository) BooksByIDs(ctx context.Context, ids []string) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.selectBooks(ctx, qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Eq{"id": ids}))
}

func (r *repository) BooksByAuthorIDs(ctx context.Context, ids []string) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.selectBooks(ctx, qb.Select(bookCols...).
		From(booksTableName).
		Where(sq.Eq{"author_id": ids}).
		OrderBy("title"))
}

// decrementAvailableQuery is a compare-and-swap take of one copy: the guard
// in the UPDATE keeps concurrent borrowers from driving the count negative.
func decrementAvailableQuery(bookID string) sq.UpdateBuilder {
	return qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies - 1")).
		Where(sq.Eq{"id": bookID}).
		Where(sq.Gt{"available_copies": 0})
}

// incrementAvailableQuery restores one copy, capping at total_copies so a
// double return never overflows the stock.
func incrementAvailableQuery(bookID string) sq.UpdateBuilder {
	return qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies + 1")).
		Where(sq.Eq{"id": bookID}).
		Where(sq.Expr("available_copies < total_copies"))
}

func (r *repository) decrementAvailable(ctx context.Context, tx sqlx.ExtContext, bookID string) error {
	query, args, err := decrementAvailableQuery(bookID).ToSql()
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		exists, err := r.bookExists(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}
		return errs.ErrNoCopies
	}
	return nil
}

func (r *repository) incrementAvailable(ctx context.Context, tx sqlx.ExtContext, bookID string) error {
	query, args, err := incrementAvailableQuery(bookID).ToSql()
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		exists, err := r.bookExists(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}
	}
	return nil
}

func (r *repository) bookExists(ctx context.Context, tx sqlx.ExtContext, bookID string) (bool, error) {
	var exists bool
	q := `select exists(select 1 from books where id = $1)`
	if err := sqlx.GetContext(ctx, tx, &exists, q, bookID); err != nil {
		return false, err
	}
	return exists, nil
}
