package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"memorial-banner/internal/core/cache"
	"memorial-banner/internal/features/banners/domain"
)

func bannerKey(memorialID string) string { return "memorial:" + memorialID + ":banner" }
func planKey(memorialID string) string { return "memorial:" + memorialID + ":plan" }

// RedisBannerRepository implements ports.BannerRepository on the cache port.
// Banner settings never expire.
type RedisBannerRepository struct {
	cache cache.Cache
}

// NewRedisBannerRepository creates a new RedisBannerRepository.
func NewRedisBannerRepository(c cache.Cache) *RedisBannerRepository {
	return &RedisBannerRepository{
		cache: c,
	}
}

// Save stores the memorial's banner settings.
func (r *RedisBannerRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if err := r.put(ctx, bannerKey(settings.MemorialID), settings); err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// Get returns the memorial's banner settings, or nil when none are stored.
func (r *RedisBannerRepository) Get(ctx context.Context, memorialID string) (*domain.Settings, error) {
	var settings domain.Settings
	found, err := r.fetch(ctx, bannerKey(memorialID), &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &settings, nil
}

// Delete removes the memorial's banner settings.
func (r *RedisBannerRepository) Delete(ctx context.Context, memorialID string) error {
	if err := r.cache.Delete(ctx, bannerKey(memorialID)); err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	return nil
}

// SaveEntitlement stores the banner-related part of the memorial's plan.
func (r *RedisBannerRepository) SaveEntitlement(ctx context.Context, memorialID string, entitlement domain.Entitlement) error {
	if err := r.put(ctx, planKey(memorialID), entitlement); err != nil {
		return fmt.Errorf("failed to save entitlement: %w", err)
	}
	return nil
}

// Entitlement returns the memorial's plan entitlement, or nil when none is stored.
func (r *RedisBannerRepository) Entitlement(ctx context.Context, memorialID string) (*domain.Entitlement, error) {
	var entitlement domain.Entitlement
	found, err := r.fetch(ctx, planKey(memorialID), &entitlement)
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &entitlement, nil
}

func (r *RedisBannerRepository) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.cache.Set(ctx, key, data, 0)
}

func (r *RedisBannerRepository) fetch(ctx context.Context, key string, v any) (bool, error) {
	data, err := r.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}
