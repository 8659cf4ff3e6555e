package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrCustomBannerNotAllowed is returned when the memorial's plan does not include custom banners.
var ErrCustomBannerNotAllowed = errors.New("plan does not allow custom banners")

// Settings is the persisted banner choice of one memorial.
type Settings struct {
	MemorialID string    `json:"memorial_id"`
	Kind       Kind      `json:"banner_type"`
	Value      string    `json:"banner_value"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSettings validates a (kind, storage value) pair received from a client.
func NewSettings(memorialID string, kind Kind, value string) (*Settings, error) {
	if kind != KindImage && kind != KindColor {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBannerKind, kind)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyBannerValue
	}
	if utf8.RuneCountInString(value) > MaxValueLength {
		return nil, fmt.Errorf("%w: %d characters allowed", ErrBannerValueTooLong, MaxValueLength)
	}
	if kind == KindImage && (strings.HasPrefix(value, "/") || strings.Contains(value, "..") || strings.Contains(value, "://")) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImagePath, value)
	}

	return &Settings{
		MemorialID: memorialID,
		Kind:       kind,
		Value:      value,
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

// DefaultSettings is what a memorial shows before anyone picks a banner.
func DefaultSettings(memorialID, color string) *Settings {
	return &Settings{
		MemorialID: memorialID,
		Kind:       KindColor,
		Value:      color,
	}
}

// Option converts the stored settings back into a selectable option.
func (s *Settings) Option() (Option, error) {
	return s.State().Option()
}

// State returns the stored kind and value.
func (s *Settings) State() State {
	return State{Kind: s.Kind, Value: s.Value}
}

// Entitlement is the subset of a memorial's plan that concerns banners.
type Entitlement struct {
	AllowCustomBanner bool `json:"allow_custom_banner"`
}
