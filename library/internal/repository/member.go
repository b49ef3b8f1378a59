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

var memberCols = []string{"id", "name", "email", "phone", "address"}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	query, args, err := qb.Select(memberCols...).
		From(membersTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var members []model.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return members, nil
}

func (r *repository) GetMember(ctx context.Context, id string) (model.Member, error) {
	query, args, err := qb.Select(memberCols...).
		From(membersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, wrapPgErr(err)
	}
	return member, nil
}

func (r *repository) CreateMember(ctx context.Context, req model.MemberRequest) (model.Member, error) {
	query, args, err := qb.Insert(membersTableName).
		Columns(memberCols...).
		Values(uuid.NewString(), req.Name, req.Email, req.Phone, req.Address).
		Suffix("returning " + joinCols(memberCols)).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		r.log.Error("CreateMember", zap.String("q", query), zap.Any("args", args))
		return model.Member{}, wrapPgErr(err)
	}
	return member, nil
}

func (r *repository) UpdateMember(ctx context.Context, id string, req model.MemberRequest) (model.Member, error) {
	query, args, err := qb.Update(membersTableName).
		Set("name", req.Name).
		Set("email", req.Email).
		Set("phone", req.Phone).
		Set("address", req.Address).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinCols(memberCols)).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, wrapPgErr(err)
	}
	return member, nil
}

func (r *repository) DeleteMember(ctx context.Context, id string) error {
	query, args, err := qb.Delete(membersTableName).
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

func (r *repository) SearchMembers(ctx context.Context, keyword string) ([]model.Member, error) {
	query, args, err := qb.Select(memberCols...).
		From(membersTableName).
		Where(containsAny(keyword, "name", "email", "phone")).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var members []model.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return members, nil
}

func (r *repository) MembersByIDs(ctx context.Context, ids []string) ([]model.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select(memberCols...).
		From(membersTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var members []model.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, wrapPgErr(err)
	}
	return members, nil
}
