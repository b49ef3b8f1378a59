package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
)

var loanCols = []string{"id", "book_id", "member_id", "borrow_date", "due_date", "return_date", "status"}

type loanRow struct {
	ID         string       `db:"id"`
	BookID     string       `db:"book_id"`
	MemberID   string       `db:"member_id"`
	BorrowDate time.Time    `db:"borrow_date"`
	DueDate    sql.NullTime `db:"due_date"`
	ReturnDate sql.NullTime `db:"return_date"`
	Status     model.Status `db:"status"`
}

func (l loanRow) toModel() model.BorrowedBook {
	loan := model.BorrowedBook{
		ID:         l.ID,
		BookID:     l.BookID,
		MemberID:   l.MemberID,
		BorrowDate: model.NewDate(l.BorrowDate),
		Status:     l.Status,
	}
	if l.DueDate.Valid {
		d := model.NewDate(l.DueDate.Time)
		loan.DueDate = &d
	}
	if l.ReturnDate.Valid {
		d := model.NewDate(l.ReturnDate.Time)
		loan.ReturnDate = &d
	}
	return loan
}

func toLoans(rows []loanRow) []model.BorrowedBook {
	loans := make([]model.BorrowedBook, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.toModel())
	}
	return loans
}

func (r *repository) selectLoans(ctx context.Context, q sq.SelectBuilder) ([]model.BorrowedBook, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []loanRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return toLoans(rows), nil
}

func (r *repository) ListLoans(ctx context.Context, from, to *time.Time) ([]model.BorrowedBook, error) {
	q := qb.Select(loanCols...).
		From(loansTableName).
		OrderBy("borrow_date desc")
	if from != nil {
		q = q.Where(sq.GtOrEq{"borrow_date": *from})
	}
	if to != nil {
		q = q.Where(sq.LtOrEq{"borrow_date": *to})
	}
	return r.selectLoans(ctx, q)
}

func (r *repository) GetLoan(ctx context.Context, id string) (model.BorrowedBook, error) {
	query, args, err := qb.Select(loanCols...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowedBook{}, err
	}

	var row loanRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowedBook{}, errs.ErrNotFound
		}
		return model.BorrowedBook{}, wrapPgErr(err)
	}
	return row.toModel(), nil
}

// BorrowBook takes one available copy and records the loan in a single
// transaction, so a failed insert can never leak inventory.
func (r *repository) BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowedBook, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := r.decrementAvailable(ctx, tx, req.BookID); err != nil {
		return model.BorrowedBook{}, err
	}

	var due any
	if req.DueDate != nil {
		due = req.DueDate.Time
	}
	query, args, err := qb.Insert(loansTableName).
		Columns("id", "book_id", "member_id", "borrow_date", "due_date", "status").
		Values(uuid.NewString(), req.BookID, req.MemberID, req.BorrowDate.Time, due, model.StatusBorrowed).
		Suffix("returning " + joinCols(loanCols)).
		ToSql()
	if err != nil {
		return model.BorrowedBook{}, err
	}

	var row loanRow
	if err := sqlx.GetContext(ctx, tx, &row, query, args...); err != nil {
		r.log.Error("BorrowBook", zap.String("q", query), zap.Any("args", args))
		return model.BorrowedBook{}, wrapPgErr(err)
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowedBook{}, err
	}
	return row.toModel(), nil
}

// ReturnBook completes a loan and restores the copy in one transaction. The
// return_date guard makes a second return a no-op reported as not found.
func (r *repository) ReturnBook(ctx context.Context, id string) (model.BorrowedBook, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`update %s
	set return_date = current_date, status = '%s'
	where id = $1 and return_date is null
	returning %s`, loansTableName, model.StatusReturned, joinCols(loanCols))

	var row loanRow
	if err := sqlx.GetContext(ctx, tx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowedBook{}, errs.ErrNotFound
		}
		return model.BorrowedBook{}, wrapPgErr(err)
	}

	if err := r.incrementAvailable(ctx, tx, row.BookID); err != nil {
		return model.BorrowedBook{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowedBook{}, err
	}
	return row.toModel(), nil
}

func (r *repository) UpdateLoan(ctx context.Context, id string, req model.LoanUpdateRequest) (model.BorrowedBook, error) {
	var due, ret any
	if req.DueDate != nil {
		due = req.DueDate.Time
	}
	if req.ReturnDate != nil {
		ret = req.ReturnDate.Time
	}

	query, args, err := qb.Update(loansTableName).
		Set("book_id", req.BookID).
		Set("member_id", req.MemberID).
		Set("borrow_date", req.BorrowDate.Time).
		Set("due_date", due).
		Set("return_date", ret).
		Set("status", req.Status).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinCols(loanCols)).
		ToSql()
	if err != nil {
		return model.BorrowedBook{}, err
	}

	var row loanRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowedBook{}, errs.ErrNotFound
		}
		return model.BorrowedBook{}, wrapPgErr(err)
	}
	return row.toModel(), nil
}

var deleteLoanQuery = fmt.Sprintf(`delete from %s where id = $1 returning book_id, return_date`, loansTableName)

type deletedLoan struct {
	BookID     string       `db:"book_id"`
	ReturnDate sql.NullTime `db:"return_date"`
}

// outstanding reports whether the loan still held its copy when deleted.
func (d deletedLoan) outstanding() bool {
	return !d.ReturnDate.Valid
}

// DeleteLoan removes the record; an outstanding loan gives its copy back
// first, so deletion never strands a copy as unavailable.
func (r *repository) DeleteLoan(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var row deletedLoan
	if err := sqlx.GetContext(ctx, tx, &row, deleteLoanQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return wrapPgErr(err)
	}

	if row.outstanding() {
		if err := r.incrementAvailable(ctx, tx, row.BookID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) SearchLoans(ctx context.Context, keyword string) ([]model.BorrowedBook, error) {
	return r.selectLoans(ctx, qb.Select(prefixCols("l", loanCols)...).
		From(loansTableName+" l").
		Join(booksTableName+" b on b.id = l.book_id").
		Join(membersTableName+" m on m.id = l.member_id").
		Where(containsAny(keyword, "b.title", "m.name")).
		OrderBy("l.borrow_date desc"))
}

func (r *repository) ActiveLoans(ctx context.Context) ([]model.BorrowedBook, error) {
	return r.selectLoans(ctx, qb.Select(loanCols...).
		From(loansTableName).
		Where("return_date is null").
		OrderBy("borrow_date desc"))
}

// OverdueLoans is a pure view: overdue is never persisted in status.
func (r *repository) OverdueLoans(ctx context.Context) ([]model.BorrowedBook, error) {
	return r.selectLoans(ctx, qb.Select(loanCols...).
		From(loansTableName).
		Where("return_date is null").
		Where("due_date < current_date").
		OrderBy("due_date"))
}

func (r *repository) LoansByBookIDs(ctx context.Context, ids []string) ([]model.BorrowedBook, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.selectLoans(ctx, qb.Select(loanCols...).
		From(loansTableName).
		Where(sq.Eq{"book_id": ids}).
		OrderBy("borrow_date desc"))
}

func (r *repository) LoansByMemberIDs(ctx context.Context, ids []string) ([]model.BorrowedBook, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.selectLoans(ctx, qb.Select(loanCols...).
		From(loansTableName).
		Where(sq.Eq{"member_id": ids}).
		OrderBy("borrow_date desc"))
}
