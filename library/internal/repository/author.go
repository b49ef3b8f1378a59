package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/model"
)

var authorCols = []string{"id", "name", "biography", "nationality"}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	query, args, err := qb.Select(authorCols...).
		From(authorsTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return authors, nil
}

func (r *repository) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	query, args, err := qb.Select(authorCols...).
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, wrapPgErr(err)
	}
	return author, nil
}

func (r *repository) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	query, args, err := qb.Insert(authorsTableName).
		Columns(authorCols...).
		Values(uuid.NewString(), req.Name, req.Biography, req.Nationality).
		Suffix("returning " + joinCols(authorCols)).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, wrapPgErr(err)
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id string, req model.AuthorRequest) (model.Author, error) {
	query, args, err := qb.Update(authorsTableName).
		Set("name", req.Name).
		Set("biography", req.Biography).
		Set("nationality", req.Nationality).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinCols(authorCols)).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, wrapPgErr(err)
	}
	return author, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id string) error {
	query, args, err := qb.Delete(authorsTableName).
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

func (r *repository) SearchAuthors(ctx context.Context, keyword string) ([]model.Author, error) {
	query, args, err := qb.Select(authorCols...).
		From(authorsTableName).
		Where(containsAny(keyword, "name", "nationality")).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return authors, nil
}

func (r *repository) AuthorsByIDs(ctx context.Context, ids []string) ([]model.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select(authorCols...).
		From(authorsTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return authors, nil
}
