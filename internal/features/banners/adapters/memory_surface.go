package adapters

import (
	"sync"

	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"
)

// MemorySurface is an in-process banner element.
type MemorySurface struct {
	mu      sync.Mutex
	style   domain.Style
	renders int
}

// NewMemorySurface creates a surface already showing initial.
func NewMemorySurface(initial domain.Style) *MemorySurface {
	return &MemorySurface{style: initial}
}

// Style implements ports.BannerSurface.
func (s *MemorySurface) Style() (domain.Style, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style, nil
}

// Render implements ports.BannerSurface.
func (s *MemorySurface) Render(style domain.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style
	s.renders++
	return nil
}

// Renders counts Render calls.
func (s *MemorySurface) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// MemoryDialog is an in-process picker surface identified by an element id.
type MemoryDialog struct {
	mu      sync.Mutex
	id      string
	visible bool
}

// NewMemoryDialog creates a hidden dialog.
func NewMemoryDialog(id string) *MemoryDialog {
	return &MemoryDialog{id: id}
}

func (d *MemoryDialog) Show() error {
	d.mu.Lock()
	d.visible = true
	d.mu.Unlock()
	return nil
}

func (d *MemoryDialog) Hide() error {
	d.mu.Lock()
	d.visible = false
	d.mu.Unlock()
	return nil
}

// Contains implements ports.DialogSurface.
func (d *MemoryDialog) Contains(target ports.Target) bool {
	return target.Within(d.id)
}

// Visible reports whether the dialog is currently shown.
func (d *MemoryDialog) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// PointerHub fans pointer interactions out to subscribers.
type PointerHub struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(ports.Target)
}

// NewPointerHub creates a hub with no subscribers.
func NewPointerHub() *PointerHub {
	return &PointerHub{handlers: make(map[int]func(ports.Target))}
}

// Subscribe implements ports.PointerEvents.
func (h *PointerHub) Subscribe(handler func(ports.Target)) (func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	h.handlers[id] = handler

	return func() {
		h.mu.Lock()
		delete(h.handlers, id)
		h.mu.Unlock()
	}, nil
}

// Dispatch delivers target to every current subscriber.
func (h *PointerHub) Dispatch(target ports.Target) {
	h.mu.Lock()
	handlers := make([]func(ports.Target), 0, len(h.handlers))
	for _, fn := range h.handlers {
		handlers = append(handlers, fn)
	}
	h.mu.Unlock()

	for _, fn := range handlers {
		fn(target)
	}
}

// Subscribers returns the number of live subscriptions.
func (h *PointerHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}
