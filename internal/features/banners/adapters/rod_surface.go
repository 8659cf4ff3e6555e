package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"memorial-banner/internal/core/logger"
	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
	"go.uber.org/zap"
)

// Element ids used by the memorial edit page.
const (
	BannerElementID  = "memorialBanner"
	DialogElementID  = "bannerSelectionModal"
	TriggerElementID = "changeBannerBtn"
	CloseElementID   = "closeBannerModal"
)

const (
	readStyleJS = `(id) => {
		const el = document.getElementById(id);
		if (!el) { throw new Error('element not found: ' + id); }
		let cls = '';
		if (el.classList.contains('banner-image')) { cls = 'banner-image'; }
		else if (el.classList.contains('banner-color')) { cls = 'banner-color'; }
		return JSON.stringify({
			background_image: el.style.backgroundImage,
			background_color: el.style.backgroundColor,
			class: cls,
		});
	}`

	renderStyleJS = `(id, image, color, cls) => {
		const el = document.getElementById(id);
		if (!el) { throw new Error('element not found: ' + id); }
		el.style.backgroundImage = image;
		el.style.backgroundColor = color;
		el.classList.remove('banner-image', 'banner-color');
		if (cls) { el.classList.add(cls); }
	}`

	displayJS = `(id, display) => {
		const el = document.getElementById(id);
		if (!el) { throw new Error('element not found: ' + id); }
		el.style.display = display;
	}`

	listenJS = `(binding) => {
		const listener = (e) => {
			const path = [];
			for (let n = e.target.parentElement; n; n = n.parentElement) {
				if (n.id) { path.push(n.id); }
			}
			window[binding](JSON.stringify({id: e.target.id || '', path: path}));
		};
		window[binding + 'Listener'] = listener;
		document.addEventListener('click', listener);
	}`

	unlistenJS = `(binding) => {
		document.removeEventListener('click', window[binding + 'Listener']);
		delete window[binding + 'Listener'];
	}`
)

// RodPage is a memorial edit page opened in a headless browser.
// It provides the banner, dialog and pointer surfaces backed by the live DOM.
type RodPage struct {
	browser *rod.Browser
	page    *rod.Page
	logger  *zap.Logger
}

// OpenRodPage launches a headless browser and loads pageURL.
func OpenRodPage(ctx context.Context, pageURL string) (*RodPage, error) {
	log := logger.Named("rod")
	log.Debug("Launching browser...", zap.String("url", pageURL))

	u, err := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	if err := page.Timeout(30 * time.Second).WaitLoad(); err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	return &RodPage{browser: browser, page: page, logger: log}, nil
}

// Close shuts the browser down.
func (p *RodPage) Close() error {
	return p.browser.Close()
}

// Banner returns the banner element surface.
func (p *RodPage) Banner() *RodBanner {
	return &RodBanner{page: p.page, id: BannerElementID}
}

// Dialog returns the selection dialog surface.
func (p *RodPage) Dialog() *RodDialog {
	return &RodDialog{page: p.page, id: DialogElementID}
}

// Pointer returns the document click stream.
func (p *RodPage) Pointer() *RodPointer {
	return &RodPointer{page: p.page, binding: "__bannerPointer", logger: p.logger}
}

// RodBanner implements ports.BannerSurface against an element's inline style.
type RodBanner struct {
	page *rod.Page
	id   string
}

// Style implements ports.BannerSurface.
func (b *RodBanner) Style() (domain.Style, error) {
	res, err := b.page.Eval(readStyleJS, b.id)
	if err != nil {
		return domain.Style{}, fmt.Errorf("failed to read banner style: %w", err)
	}

	var style domain.Style
	if err := json.Unmarshal([]byte(res.Value.Str()), &style); err != nil {
		return domain.Style{}, fmt.Errorf("failed to decode banner style: %w", err)
	}
	return style, nil
}

// Render implements ports.BannerSurface.
func (b *RodBanner) Render(style domain.Style) error {
	if _, err := b.page.Eval(renderStyleJS, b.id, style.BackgroundImage, style.BackgroundColor, style.Class); err != nil {
		return fmt.Errorf("failed to render banner style: %w", err)
	}
	return nil
}

// RodDialog implements ports.DialogSurface by toggling the element's display.
type RodDialog struct {
	page *rod.Page
	id   string
}

// Show implements ports.DialogSurface.
func (d *RodDialog) Show() error { return d.display("block") }

// Hide implements ports.DialogSurface.
func (d *RodDialog) Hide() error { return d.display("none") }

// Contains reports whether target is the dialog element or inside it.
func (d *RodDialog) Contains(target ports.Target) bool {
	return target.Within(d.id)
}

func (d *RodDialog) display(value string) error {
	if _, err := d.page.Eval(displayJS, d.id, value); err != nil {
		return fmt.Errorf("failed to set dialog display: %w", err)
	}
	return nil
}

// RodPointer implements ports.PointerEvents with a page binding and a document click listener.
type RodPointer struct {
	page    *rod.Page
	binding string
	logger  *zap.Logger
}

// Subscribe implements ports.PointerEvents. The release function removes both
// the click listener and the page binding.
func (p *RodPointer) Subscribe(handler func(ports.Target)) (func(), error) {
	stop, err := p.page.Expose(p.binding, func(arg gson.JSON) (interface{}, error) {
		var raw struct {
			ID   string   `json:"id"`
			Path []string `json:"path"`
		}
		if err := json.Unmarshal([]byte(arg.Str()), &raw); err != nil {
			return nil, err
		}
		handler(ports.Target{ID: raw.ID, Path: raw.Path})
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expose pointer binding: %w", err)
	}

	if _, err := p.page.Eval(listenJS, p.binding); err != nil {
		_ = stop()
		return nil, fmt.Errorf("failed to install click listener: %w", err)
	}

	return func() {
		if _, err := p.page.Eval(unlistenJS, p.binding); err != nil {
			p.logger.Warn("Failed to remove click listener", zap.Error(err))
		}
		if err := stop(); err != nil {
			p.logger.Warn("Failed to remove pointer binding", zap.Error(err))
		}
	}, nil
}
