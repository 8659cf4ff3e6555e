package service

import (
	"context"
	"fmt"

	"memorial-banner/internal/core/config"
	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"
)

// BannerServiceImpl implements ports.BannerService.
type BannerServiceImpl struct {
	repo ports.BannerRepository
	cfg  config.BannerConfig
}

// NewBannerService creates a new BannerServiceImpl.
func NewBannerService(repo ports.BannerRepository, cfg config.BannerConfig) *BannerServiceImpl {
	return &BannerServiceImpl{
		repo: repo,
		cfg:  cfg,
	}
}

// UpdateBanner validates and stores a memorial's banner choice.
// With plan enforcement on, the memorial needs an entitlement allowing custom banners.
func (s *BannerServiceImpl) UpdateBanner(ctx context.Context, memorialID string, kind domain.Kind, value string) (*domain.Settings, error) {
	settings, err := domain.NewSettings(memorialID, kind, value)
	if err != nil {
		return nil, err
	}

	if s.cfg.EnforcePlan {
		entitlement, err := s.repo.Entitlement(ctx, memorialID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to check plan: %w", err)
		}
		if entitlement == nil || !entitlement.AllowCustomBanner {
			return nil, domain.ErrCustomBannerNotAllowed
		}
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("service: failed to save banner: %w", err)
	}

	return settings, nil
}

// GetBanner returns the stored banner, or the default colour banner when none is stored.
func (s *BannerServiceImpl) GetBanner(ctx context.Context, memorialID string) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx, memorialID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get banner: %w", err)
	}
	if settings == nil {
		return domain.DefaultSettings(memorialID, s.cfg.DefaultColor), nil
	}

	return settings, nil
}

// ResetBanner drops the stored choice so the default applies again.
func (s *BannerServiceImpl) ResetBanner(ctx context.Context, memorialID string) error {
	if err := s.repo.Delete(ctx, memorialID); err != nil {
		return fmt.Errorf("service: failed to reset banner: %w", err)
	}

	return nil
}

// SetEntitlement records whether the memorial's plan allows custom banners.
func (s *BannerServiceImpl) SetEntitlement(ctx context.Context, memorialID string, entitlement domain.Entitlement) error {
	if err := s.repo.SaveEntitlement(ctx, memorialID, entitlement); err != nil {
		return fmt.Errorf("service: failed to set entitlement: %w", err)
	}

	return nil
}
