package service

import (
	"context"

	"github.com/2ntng/library-management/library/internal/model"
)

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateMembers(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (model.Member, error) {
	member, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return model.Member{}, err
	}
	members := []model.Member{member}
	if err := s.populateMembers(ctx, members); err != nil {
		return model.Member{}, err
	}
	return members[0], nil
}

func (s *Service) CreateMember(ctx context.Context, req model.MemberRequest) (model.Member, error) {
	return s.repo.CreateMember(ctx, req)
}

func (s *Service) UpdateMember(ctx context.Context, id string, req model.MemberRequest) (model.Member, error) {
	return s.repo.UpdateMember(ctx, id, req)
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	return s.repo.DeleteMember(ctx, id)
}

func (s *Service) SearchMembers(ctx context.Context, keyword string) ([]model.Member, error) {
	members, err := s.repo.SearchMembers(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if err := s.populateMembers(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}
