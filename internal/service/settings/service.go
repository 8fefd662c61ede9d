package settings

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo repository.SettingsRepository
}

func NewService(repo repository.SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, req *model.UpdateSettingsRequest) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}

	req.Apply(settings)
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, errors.Internal(err)
	}
	return settings, nil
}
