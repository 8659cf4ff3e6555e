package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editPage = `<!doctype html>
<html><body id="page">
<div id="memorialBanner" class="banner banner-color" style="background-color: white"></div>
<button id="changeBannerBtn">Change banner</button>
<div id="bannerSelectionModal" style="display: none">
  <div id="optionGrid"><span id="option1">Sea</span></div>
</div>
</body></html>`

// TestRodPage drives a real headless browser. Set BANNER_E2E=1 to run it.
func TestRodPage(t *testing.T) {
	if os.Getenv("BANNER_E2E") == "" {
		t.Skip("set BANNER_E2E=1 to run browser tests")
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(editPage))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	page, err := OpenRodPage(ctx, ts.URL)
	require.NoError(t, err)
	defer page.Close()

	t.Run("BannerRoundTrip", func(t *testing.T) {
		banner := page.Banner()

		style, err := banner.Style()
		require.NoError(t, err)
		assert.Equal(t, "white", style.BackgroundColor)
		assert.Equal(t, domain.ClassColor, style.Class)

		want := domain.AssetRoot("/static/").StyleFor(domain.ImageOption{Path: "banners/sea.jpg"})
		require.NoError(t, banner.Render(want))

		style, err = banner.Style()
		require.NoError(t, err)
		assert.Contains(t, style.BackgroundImage, "/static/banners/sea.jpg")
		assert.Empty(t, style.BackgroundColor)
		assert.Equal(t, domain.ClassImage, style.Class)
	})

	t.Run("PointerEvents", func(t *testing.T) {
		targets := make(chan ports.Target, 1)
		release, err := page.Pointer().Subscribe(func(target ports.Target) { targets <- target })
		require.NoError(t, err)
		defer release()

		require.NoError(t, page.Dialog().Show())
		_, err = page.page.Eval(`() => document.getElementById('option1').click()`)
		require.NoError(t, err)

		select {
		case target := <-targets:
			assert.Equal(t, "option1", target.ID)
			assert.True(t, page.Dialog().Contains(target))
		case <-time.After(5 * time.Second):
			t.Fatal("no pointer event received")
		}
	})
}
