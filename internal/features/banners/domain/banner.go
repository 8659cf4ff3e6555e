package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind says whether a banner renders as an image or a flat colour.
type Kind string

const (
	KindImage Kind = "image"
	KindColor Kind = "color"
)

// Class markers applied to the banner element, one per kind.
const (
	ClassImage = "banner-image"
	ClassColor = "banner-color"
)

var (
	ErrInvalidBannerKind  = errors.New("invalid banner type")
	ErrEmptyBannerValue   = errors.New("banner value is required")
	ErrBannerValueTooLong = errors.New("banner value is too long")
	ErrInvalidImagePath   = errors.New("image path must be relative to the static root")
)

// MaxValueLength bounds stored banner values.
const MaxValueLength = 255

// ParseKind converts the wire form ("image"/"color") into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindImage:
		return KindImage, nil
	case KindColor:
		return KindColor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBannerKind, s)
}

// Class returns the class marker for the kind.
func (k Kind) Class() string {
	if k == KindImage {
		return ClassImage
	}
	return ClassColor
}

// Option is one choosable banner. It is either an ImageOption or a ColorOption.
type Option interface {
	Kind() Kind
	// StorageValue is what gets persisted: the relative path for images, the colour verbatim otherwise.
	StorageValue() string

	sealed()
}

// ImageOption is a background image addressed relative to the static asset root.
type ImageOption struct {
	Path string
}

func (ImageOption) Kind() Kind { return KindImage }
func (o ImageOption) StorageValue() string { return o.Path }
func (ImageOption) sealed() {}
func (o ImageOption) String() string { return "image:" + o.Path }

// ColorOption is a CSS colour expression used verbatim.
type ColorOption struct {
	Color string
}

func (ColorOption) Kind() Kind { return KindColor }
func (o ColorOption) StorageValue() string { return o.Color }
func (ColorOption) sealed() {}
func (o ColorOption) String() string { return "color:" + o.Color }

// NewOption builds an Option from its tagged wire form.
func NewOption(kind Kind, value string) (Option, error) {
	if value == "" {
		return nil, ErrEmptyBannerValue
	}
	switch kind {
	case KindImage:
		return ImageOption{Path: value}, nil
	case KindColor:
		return ColorOption{Color: value}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidBannerKind, kind)
}

// Match calls image or color depending on which variant opt holds.
func Match[T any](opt Option, image func(ImageOption) T, color func(ColorOption) T) T {
	switch o := opt.(type) {
	case ImageOption:
		return image(o)
	case *ImageOption:
		return image(*o)
	case ColorOption:
		return color(o)
	case *ColorOption:
		return color(*o)
	}
	panic(fmt.Sprintf("domain: unhandled banner option %T", opt))
}

// State is an option in its tagged wire form, as posted and stored.
type State struct {
	Kind  Kind   `json:"banner_type"`
	Value string `json:"banner_value"`
}

// StateOf returns the wire form of opt.
func StateOf(opt Option) State {
	return Match(opt,
		func(o ImageOption) State { return State{Kind: KindImage, Value: o.Path} },
		func(o ColorOption) State { return State{Kind: KindColor, Value: o.Color} },
	)
}

// Option parses the state back into an Option.
func (s State) Option() (Option, error) {
	return NewOption(s.Kind, s.Value)
}

// Style is the rendered state of the banner element.
// Empty BackgroundImage/BackgroundColor means the property is unset.
type Style struct {
	BackgroundImage string `json:"background_image"`
	BackgroundColor string `json:"background_color"`
	// Class is the kind marker (ClassImage or ClassColor), empty when neither is set.
	Class string `json:"class"`
}

// WithBackground returns s with both background properties taken from other. The class is kept.
func (s Style) WithBackground(other Style) Style {
	s.BackgroundImage = other.BackgroundImage
	s.BackgroundColor = other.BackgroundColor
	return s
}

// AssetRoot is the prefix relative image paths are rooted under for display, e.g. "/static/".
type AssetRoot string

// Rooted joins the root and a relative path with exactly one slash between them.
func (r AssetRoot) Rooted(path string) string {
	root := string(r)
	if root == "" {
		return path
	}
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ImageReference returns the background-image value for a relative path.
func (r AssetRoot) ImageReference(path string) string {
	return fmt.Sprintf("url('%s')", r.Rooted(path))
}

// StyleFor renders an option. Setting one background clears the other.
func (r AssetRoot) StyleFor(opt Option) Style {
	return Match(opt,
		func(o ImageOption) Style {
			return Style{BackgroundImage: r.ImageReference(o.Path), Class: ClassImage}
		},
		func(o ColorOption) Style {
			return Style{BackgroundColor: o.Color, Class: ClassColor}
		},
	)
}
