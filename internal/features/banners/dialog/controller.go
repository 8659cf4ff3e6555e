// Package dialog holds the banner selection dialog state machine.
package dialog

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

// Visibility is the dialog state.
type Visibility int

const (
	Closed Visibility = iota
	Open
)

func (v Visibility) String() string {
	if v == Open {
		return "open"
	}
	return "closed"
}

// ErrNotOpen is reported when an option is selected while the dialog is closed.
var ErrNotOpen = errors.New("banner dialog is not open")

// Display is what the dialog needs from the banner display controller.
type Display interface {
	ApplyOptimistic(option domain.Option) error
	Synchronize(ctx context.Context, option domain.Option) error
}

// Controller routes trigger, close, option and outside-pointer interactions.
//
// Selecting an option closes the dialog right after the optimistic apply; the
// save runs in its own goroutine and is never cancelled. Two quick selections
// race and whichever save finishes last decides whether the banner is rolled back.
type Controller struct {
	mu        sync.Mutex
	state     Visibility
	surface   ports.DialogSurface
	display   Display
	pointer   ports.PointerEvents
	triggerID string
	release   func()
	inflight  sync.WaitGroup
	logger    *zap.Logger
}

// New creates a closed dialog. triggerID is the id of the control that opens it;
// pointer interactions on it never count as outside clicks.
func New(surface ports.DialogSurface, display Display, pointer ports.PointerEvents, triggerID string) *Controller {
	return &Controller{
		state:     Closed,
		surface:   surface,
		display:   display,
		pointer:   pointer,
		triggerID: triggerID,
		logger:    logger.Named("dialog"),
	}
}

// Attach starts listening for outside-pointer interactions. Calling it twice is a no-op.
func (c *Controller) Attach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.release != nil {
		return nil
	}

	release, err := c.pointer.Subscribe(c.HandlePointer)
	if err != nil {
		return fmt.Errorf("failed to subscribe to pointer events: %w", err)
	}
	c.release = release
	return nil
}

// Dispose stops listening for pointer interactions. In-flight saves keep running.
func (c *Controller) Dispose() {
	c.mu.Lock()
	release := c.release
	c.release = nil
	c.mu.Unlock()

	if release != nil {
		release()
	}
}

// State returns the current visibility.
func (c *Controller) State() Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OpenFromTrigger handles activation of the "change banner" control.
func (c *Controller) OpenFromTrigger() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.surface.Show(); err != nil {
		return fmt.Errorf("failed to show dialog: %w", err)
	}
	c.state = Open
	return nil
}

// CloseFromControl handles activation of the close control.
func (c *Controller) CloseFromControl() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

// HandlePointer closes an open dialog when target is outside it and is not the trigger.
func (c *Controller) HandlePointer(target ports.Target) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Open || c.surface.Contains(target) || target.ID == c.triggerID {
		return
	}
	if err := c.closeLocked(); err != nil {
		c.logger.Warn("Failed to close dialog on outside click", zap.Error(err))
	}
}

// Select applies option optimistically, starts saving it in the background and
// closes the dialog without waiting for the save. The returned channel yields
// the save outcome once and is then closed; nothing inside the dialog reads it.
func (c *Controller) Select(option domain.Option) <-chan error {
	done := make(chan error, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Open {
		done <- ErrNotOpen
		close(done)
		return done
	}

	if err := c.display.ApplyOptimistic(option); err != nil {
		c.logger.Error("Optimistic banner apply failed", zap.Error(err))
		if cerr := c.closeLocked(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		done <- err
		close(done)
		return done
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		done <- c.display.Synchronize(context.Background(), option)
		close(done)
	}()

	if err := c.closeLocked(); err != nil {
		c.logger.Warn("Failed to close dialog after selection", zap.Error(err))
	}
	return done
}

// Wait blocks until every save started by Select has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// closeLocked always leaves the machine Closed, even if the surface could not be hidden.
func (c *Controller) closeLocked() error {
	c.state = Closed
	if err := c.surface.Hide(); err != nil {
		return fmt.Errorf("failed to hide dialog: %w", err)
	}
	return nil
}
