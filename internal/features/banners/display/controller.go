// Package display renders the chosen banner and keeps it consistent with the server.
//
// A choice is applied to the surface before it is saved. If the save fails the
// background is put back to what the page showed when the controller was built,
// never to a later successful save. Only the two background properties are
// restored; the class marker keeps whatever the last apply set.
package display

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"memorial-banner/internal/core/logger"
	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"

	"go.uber.org/zap"
)

// AlertPrefix starts every failure message shown to the user.
const AlertPrefix = "Failed to update banner: "

// Controller owns the banner surface and its rollback target.
type Controller struct {
	// mu serialises surface mutations the way a UI thread would.
	mu        sync.Mutex
	surface   ports.BannerSurface
	persister ports.Persister
	notifier  ports.Notifier
	root      domain.AssetRoot
	original  domain.Style
	logger    *zap.Logger
}

// New captures the currently rendered style as the rollback target.
func New(surface ports.BannerSurface, persister ports.Persister, notifier ports.Notifier, root domain.AssetRoot) (*Controller, error) {
	original, err := surface.Style()
	if err != nil {
		return nil, fmt.Errorf("failed to capture original banner: %w", err)
	}

	return &Controller{
		surface:   surface,
		persister: persister,
		notifier:  notifier,
		root:      root,
		original:  original,
		logger:    logger.Named("display"),
	}, nil
}

// Original returns the style captured at construction.
func (c *Controller) Original() domain.Style {
	return c.original
}

// ApplyOptimistic shows option immediately, before any confirmation.
func (c *Controller) ApplyOptimistic(option domain.Option) error {
	style := c.root.StyleFor(option)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.surface.Render(style); err != nil {
		return fmt.Errorf("failed to render banner: %w", err)
	}

	c.logger.Debug("Banner applied optimistically",
		zap.String("banner_type", string(option.Kind())),
		zap.String("background_image", style.BackgroundImage),
		zap.String("background_color", style.BackgroundColor),
	)
	return nil
}

// Persist saves option through the persister. Every failure comes back as *domain.PersistenceError.
func (c *Controller) Persist(ctx context.Context, option domain.Option) error {
	c.logger.Debug("Persisting banner",
		zap.String("banner_type", string(option.Kind())),
		zap.String("banner_value", option.StorageValue()),
	)

	if err := c.persister.Persist(ctx, option); err != nil {
		return domain.NewPersistenceError(err)
	}
	return nil
}

// Rollback restores the background image and colour captured at construction.
func (c *Controller) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.surface.Style()
	if err != nil {
		return fmt.Errorf("failed to read banner before rollback: %w", err)
	}

	if err := c.surface.Render(current.WithBackground(c.original)); err != nil {
		return fmt.Errorf("failed to restore banner: %w", err)
	}
	return nil
}

// Synchronize persists option and, if that fails, rolls back and alerts the user.
// It is meant to run after ApplyOptimistic for the same option. The returned
// error is informational; the user has already been told.
func (c *Controller) Synchronize(ctx context.Context, option domain.Option) error {
	err := c.Persist(ctx, option)
	if err == nil {
		c.logger.Debug("Banner saved", zap.String("banner_type", string(option.Kind())))
		return nil
	}

	c.logger.Warn("Banner save failed, reverting to original", zap.Error(err))

	if rbErr := c.Rollback(); rbErr != nil {
		c.logger.Error("Banner rollback failed", zap.Error(rbErr))
		err = errors.Join(err, rbErr)
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		c.notifier.Alert(AlertPrefix + pe.Message)
	}
	return err
}
