package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in       string
		expected Kind
		wantErr  bool
	}{
		{in: "image", expected: KindImage},
		{in: "color", expected: KindColor},
		{in: " Color ", expected: KindColor},
		{in: "video", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBannerKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestNewOption(t *testing.T) {
	t.Run("Image", func(t *testing.T) {
		opt, err := NewOption(KindImage, "banners/sea.jpg")
		require.NoError(t, err)
		assert.Equal(t, ImageOption{Path: "banners/sea.jpg"}, opt)
		assert.Equal(t, KindImage, opt.Kind())
		assert.Equal(t, "banners/sea.jpg", opt.StorageValue())
	})

	t.Run("Color", func(t *testing.T) {
		opt, err := NewOption(KindColor, "#112233")
		require.NoError(t, err)
		assert.Equal(t, ColorOption{Color: "#112233"}, opt)
		assert.Equal(t, "#112233", opt.StorageValue())
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := NewOption("gradient", "red")
		assert.ErrorIs(t, err, ErrInvalidBannerKind)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		_, err := NewOption(KindColor, "")
		assert.ErrorIs(t, err, ErrEmptyBannerValue)
	})
}

func TestAssetRoot(t *testing.T) {
	tests := []struct {
		root     AssetRoot
		path     string
		expected string
	}{
		{root: "/static/", path: "banners/sea.jpg", expected: "/static/banners/sea.jpg"},
		{root: "/static", path: "banners/sea.jpg", expected: "/static/banners/sea.jpg"},
		{root: "/static/", path: "/banners/sea.jpg", expected: "/static/banners/sea.jpg"},
		{root: "https://cdn.example.com/", path: "a.png", expected: "https://cdn.example.com/a.png"},
		{root: "", path: "a.png", expected: "a.png"},
	}

	for _, tt := range tests {
		t.Run(string(tt.root)+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.root.Rooted(tt.path))
		})
	}

	assert.Equal(t, "url('/static/banners/sea.jpg')", AssetRoot("/static/").ImageReference("banners/sea.jpg"))
}

func TestAssetRoot_StyleFor(t *testing.T) {
	root := AssetRoot("/static/")

	t.Run("ImageClearsColor", func(t *testing.T) {
		style := root.StyleFor(ImageOption{Path: "banners/sea.jpg"})
		assert.Equal(t, Style{
			BackgroundImage: "url('/static/banners/sea.jpg')",
			Class:           ClassImage,
		}, style)
	})

	t.Run("ColorClearsImage", func(t *testing.T) {
		style := root.StyleFor(ColorOption{Color: "rgb(1, 2, 3)"})
		assert.Equal(t, Style{
			BackgroundColor: "rgb(1, 2, 3)",
			Class:           ClassColor,
		}, style)
	})
}

func TestMatch(t *testing.T) {
	describe := func(opt Option) string {
		return Match(opt,
			func(o ImageOption) string { return "image " + o.Path },
			func(o ColorOption) string { return "color " + o.Color },
		)
	}

	assert.Equal(t, "image banners/sea.jpg", describe(ImageOption{Path: "banners/sea.jpg"}))
	assert.Equal(t, "color white", describe(ColorOption{Color: "white"}))
	assert.Equal(t, "image a.png", describe(&ImageOption{Path: "a.png"}))
	assert.Equal(t, "color red", describe(&ColorOption{Color: "red"}))
	assert.Panics(t, func() { describe(nil) })
}

func TestState(t *testing.T) {
	t.Run("FromOption", func(t *testing.T) {
		assert.Equal(t, State{Kind: KindImage, Value: "banners/sea.jpg"}, StateOf(ImageOption{Path: "banners/sea.jpg"}))
		assert.Equal(t, State{Kind: KindColor, Value: "#112233"}, StateOf(ColorOption{Color: "#112233"}))
	})

	t.Run("ToOption", func(t *testing.T) {
		opt, err := State{Kind: KindColor, Value: "white"}.Option()
		require.NoError(t, err)
		assert.Equal(t, ColorOption{Color: "white"}, opt)

		_, err = State{Kind: "video", Value: "x"}.Option()
		assert.ErrorIs(t, err, ErrInvalidBannerKind)
	})

	t.Run("FromSettings", func(t *testing.T) {
		settings := DefaultSettings("42", "#f7e8c9")
		assert.Equal(t, State{Kind: KindColor, Value: "#f7e8c9"}, settings.State())
	})
}

func TestStyle_WithBackground(t *testing.T) {
	current := Style{BackgroundImage: "url('/static/x.jpg')", Class: ClassImage}
	original := Style{BackgroundColor: "white", Class: ClassColor}

	got := current.WithBackground(original)
	assert.Equal(t, Style{BackgroundColor: "white", Class: ClassImage}, got)
}

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		value       string
		expectedErr error
	}{
		{name: "Color", kind: KindColor, value: "#112233"},
		{name: "Image", kind: KindImage, value: "banners/sea.jpg"},
		{name: "TrimmedValue", kind: KindColor, value: "  white "},
		{name: "InvalidKind", kind: "video", value: "x", expectedErr: ErrInvalidBannerKind},
		{name: "EmptyValue", kind: KindColor, value: "   ", expectedErr: ErrEmptyBannerValue},
		{name: "TooLong", kind: KindColor, value: strings.Repeat("a", MaxValueLength+1), expectedErr: ErrBannerValueTooLong},
		{name: "AbsoluteImage", kind: KindImage, value: "/static/banners/sea.jpg", expectedErr: ErrInvalidImagePath},
		{name: "TraversalImage", kind: KindImage, value: "../secret.png", expectedErr: ErrInvalidImagePath},
		{name: "RemoteImage", kind: KindImage, value: "https://evil.example/x.png", expectedErr: ErrInvalidImagePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := NewSettings("42", tt.kind, tt.value)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, settings)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "42", settings.MemorialID)
			assert.Equal(t, tt.kind, settings.Kind)
			assert.Equal(t, strings.TrimSpace(tt.value), settings.Value)
			assert.False(t, settings.UpdatedAt.IsZero())
		})
	}
}

func TestSettings_Option(t *testing.T) {
	opt, err := DefaultSettings("7", "#f7e8c9").Option()
	require.NoError(t, err)
	assert.Equal(t, ColorOption{Color: "#f7e8c9"}, opt)
}

func TestPersistenceError(t *testing.T) {
	t.Run("ServerRejection", func(t *testing.T) {
		err := NewPersistenceError(&ServerRejection{StatusCode: 500})
		assert.Equal(t, "Server responded with 500", err.Error())

		var rejection *ServerRejection
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, 500, rejection.StatusCode)
	})

	t.Run("TransportError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewPersistenceError(&TransportError{Err: cause})
		assert.Equal(t, "connection refused", err.Message)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("AlreadyNormalised", func(t *testing.T) {
		pe := &PersistenceError{Message: "boom"}
		assert.Same(t, pe, NewPersistenceError(pe))
	})
}
