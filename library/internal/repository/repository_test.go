package repository

import (
	"database/sql"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
)

func TestContainsAny(t *testing.T) {
	t.Parallel()

	query, args, err := qb.Select("id").
		From(authorsTableName).
		Where(containsAny("orwell", "name", "nationality")).
		ToSql()
	require.NoError(t, err)
	require.Equal(t, `SELECT id FROM authors WHERE (name ILIKE $1 OR nationality ILIKE $2)`, query)
	require.Equal(t, []interface{}{"%orwell%", "%orwell%"}, args)
}

func TestContainsAnyJoined(t *testing.T) {
	t.Parallel()

	query, args, err := qb.Select("b.id").
		From(booksTableName + " b").
		LeftJoin(authorsTableName + " a ON a.id = b.author_id").
		Where(containsAny("go", "b.title", "b.category", "a.name")).
		ToSql()
	require.NoError(t, err)
	require.Equal(t,
		`SELECT b.id FROM books b LEFT JOIN authors a ON a.id = b.author_id WHERE (b.title ILIKE $1 OR b.category ILIKE $2 OR a.name ILIKE $3)`,
		query)
	require.Len(t, args, 3)
}

func TestPrefixCols(t *testing.T) {
	t.Parallel()

	cols := prefixCols("b", []string{"id", "title"})
	require.Equal(t, []string{"b.id", "b.title"}, cols)
	require.Equal(t, "b.id, b.title", joinCols(cols))
}

func TestAvailableBooksQuery(t *testing.T) {
	t.Parallel()

	query, args, err := qb.Select("id").
		From(booksTableName).
		Where(sq.Gt{"available_copies": 0}).
		ToSql()
	require.NoError(t, err)
	require.Equal(t, `SELECT id FROM books WHERE available_copies > $1`, query)
	require.Equal(t, []interface{}{0}, args)
}

func TestDecrementAvailableQuery(t *testing.T) {
	t.Parallel()

	query, args, err := decrementAvailableQuery("b1").ToSql()
	require.NoError(t, err)
	require.Equal(t,
		`UPDATE books SET available_copies = available_copies - 1 WHERE id = $1 AND available_copies > $2`,
		query)
	require.Equal(t, []interface{}{"b1", 0}, args)
}

func TestIncrementAvailableQuery(t *testing.T) {
	t.Parallel()

	query, args, err := incrementAvailableQuery("b1").ToSql()
	require.NoError(t, err)
	require.Equal(t,
		`UPDATE books SET available_copies = available_copies + 1 WHERE id = $1 AND available_copies < total_copies`,
		query)
	require.Equal(t, []interface{}{"b1"}, args)
}

func TestInitialAvailable(t *testing.T) {
	t.Parallel()

	two := 2
	var tests = []struct {
		name string
		req  model.BookRequest
		want int
	}{
		{name: "defaults to total copies", req: model.BookRequest{TotalCopies: 5}, want: 5},
		{name: "explicit value kept", req: model.BookRequest{TotalCopies: 5, AvailableCopies: &two}, want: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, initialAvailable(tt.req))
		})
	}
}

func TestDeleteLoanRestoresCopy(t *testing.T) {
	t.Parallel()

	// the delete must hand back return_date so the outstanding branch can run
	require.Equal(t,
		`delete from borrowed_books where id = $1 returning book_id, return_date`,
		deleteLoanQuery)

	outstanding := deletedLoan{BookID: "b1"}
	require.True(t, outstanding.outstanding())

	returned := deletedLoan{
		BookID:     "b1",
		ReturnDate: sql.NullTime{Time: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Valid: true},
	}
	require.False(t, returned.outstanding())
}

func TestWrapPgErr(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		err  error
		want error
	}{
		{
			name: "inventory check",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: availableCopiesCheck},
			want: errs.ErrNoCopies,
		},
		{
			name: "payload check",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "books_title_check"},
			want: errs.ErrInvalidData,
		},
		{
			name: "foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			want: errs.ErrBadReference,
		},
		{
			name: "malformed uuid",
			err:  &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			want: errs.ErrNotFound,
		},
		{
			name: "other errors pass through",
			err:  errors.New("conn refused"),
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wrapPgErr(tt.err)
			if tt.want == nil {
				require.Equal(t, tt.err, got)
				return
			}
			require.ErrorIs(t, got, tt.want)
		})
	}
}
