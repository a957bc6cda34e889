package service

import (
	"context"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/repository"
)

type ActivityService interface {
	List(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error)
}

type ActivityServiceImpl struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &ActivityServiceImpl{repo: repo}
}

func (s *ActivityServiceImpl) List(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	return s.repo.List(ctx, filter)
}
