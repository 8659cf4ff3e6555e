package ports

import (
	"context"

	"memorial-banner/internal/features/banners/domain"
)

// BannerService defines the primary port for server-side banner operations.
type BannerService interface {
	UpdateBanner(ctx context.Context, memorialID string, kind domain.Kind, value string) (*domain.Settings, error)
	GetBanner(ctx context.Context, memorialID string) (*domain.Settings, error)
	ResetBanner(ctx context.Context, memorialID string) error
	SetEntitlement(ctx context.Context, memorialID string, entitlement domain.Entitlement) error
}

// BannerRepository defines the secondary port for banner storage.
// Get and Entitlement return nil, nil when nothing is stored.
type BannerRepository interface {
	Save(ctx context.Context, settings *domain.Settings) error
	Get(ctx context.Context, memorialID string) (*domain.Settings, error)
	Delete(ctx context.Context, memorialID string) error
	SaveEntitlement(ctx context.Context, memorialID string, entitlement domain.Entitlement) error
	Entitlement(ctx context.Context, memorialID string) (*domain.Entitlement, error)
}

// BannerSurface is the visible banner element.
type BannerSurface interface {
	// Style reads the currently rendered background properties and class marker.
	Style() (domain.Style, error)
	// Render replaces the background properties and class marker.
	Render(style domain.Style) error
}

// Target identifies the element a pointer interaction landed on.
type Target struct {
	// ID is the element's own id, empty when it has none.
	ID string
	// Path holds the ids of the element's ancestors, innermost first.
	Path []string
}

// Within reports whether the target is the element id or one of its descendants.
func (t Target) Within(id string) bool {
	if t.ID == id {
		return true
	}
	for _, ancestor := range t.Path {
		if ancestor == id {
			return true
		}
	}
	return false
}

// DialogSurface is the picker that lists the selectable banners.
type DialogSurface interface {
	Show() error
	Hide() error
	// Contains reports whether target lies inside the dialog's bounds.
	Contains(target Target) bool
}

// PointerEvents delivers page-wide pointer interactions.
type PointerEvents interface {
	// Subscribe registers handler until the returned release function is called.
	Subscribe(handler func(Target)) (release func(), err error)
}

// Persister saves a banner choice remotely. Failures are *domain.PersistenceError.
type Persister interface {
	Persist(ctx context.Context, option domain.Option) error
}

// Notifier presents a blocking message to the user.
type Notifier interface {
	Alert(message string)
}
