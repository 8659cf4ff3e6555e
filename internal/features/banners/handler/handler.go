package handler

import (
	"errors"
	"net/http"

	"memorial-banner/internal/core/logger"
	"memorial-banner/internal/core/server"
	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BannerHandler handles HTTP requests for memorial banners.
type BannerHandler struct {
	service ports.BannerService
	root    domain.AssetRoot
}

// NewBannerHandler creates a new BannerHandler. root is the asset root image paths are displayed under.
func NewBannerHandler(service ports.BannerService, root domain.AssetRoot) *BannerHandler {
	return &BannerHandler{
		service: service,
		root:    root,
	}
}

// Register mounts the banner routes on app.
func (h *BannerHandler) Register(app fiber.Router) {
	app.Post("/memorials/:id/update-banner", h.UpdateBanner)
	app.Get("/memorials/:id/banner", h.GetBanner)
	app.Delete("/memorials/:id/banner", h.ResetBanner)
	app.Put("/memorials/:id/plan", h.SetEntitlement)
}

// UpdateBannerRequest is the body of an update, as multipart/urlencoded form or JSON.
type UpdateBannerRequest struct {
	BannerType  string `json:"banner_type" form:"banner_type"`
	BannerValue string `json:"banner_value" form:"banner_value"`
}

// UpdateBannerResponse acknowledges a stored banner.
type UpdateBannerResponse struct {
	Status      string `json:"status"`
	BannerType  string `json:"banner_type"`
	BannerValue string `json:"banner_value"`
}

// BannerResponse is a stored banner plus the style a page renders for it.
type BannerResponse struct {
	*domain.Settings
	Style *domain.Style `json:"style,omitempty"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Error is the error description.
	Error string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

const invalidKindMessage = "Invalid banner type. Must be image or color"

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Error: message,
		RayID: server.RayID(c),
	})
}

// UpdateBanner handles POST /memorials/{id}/update-banner/.
// @Summary Update a memorial banner
// @Description Persists the banner kind and storage value chosen in the selection dialog.
// @Tags Banner
// @Accept mpfd,x-www-form-urlencoded,json
// @Produce json
// @Param id path string true "Memorial ID"
// @Param X-CSRFToken header string true "Anti-forgery token"
// @Param banner_type formData string true "image or color"
// @Param banner_value formData string true "Relative image path or CSS colour"
// @Success 200 {object} UpdateBannerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /memorials/{id}/update-banner/ [post]
func (h *BannerHandler) UpdateBanner(c *fiber.Ctx) error {
	var req UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	kind, err := domain.ParseKind(req.BannerType)
	if err != nil {
		return fail(c, http.StatusBadRequest, invalidKindMessage)
	}

	memorialID := c.Params("id")
	settings, err := h.service.UpdateBanner(c.Context(), memorialID, kind, req.BannerValue)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBannerKind):
			return fail(c, http.StatusBadRequest, invalidKindMessage)
		case errors.Is(err, domain.ErrEmptyBannerValue),
			errors.Is(err, domain.ErrBannerValueTooLong),
			errors.Is(err, domain.ErrInvalidImagePath):
			return fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrCustomBannerNotAllowed):
			return fail(c, http.StatusForbidden, "Your plan does not include custom banners")
		}
		logger.Get().Error("Failed to update banner",
			zap.String("memorial_id", memorialID),
			zap.Error(err),
		)
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(UpdateBannerResponse{
		Status:      "success",
		BannerType:  string(settings.Kind),
		BannerValue: settings.Value,
	})
}

// GetBanner handles GET /memorials/{id}/banner.
// @Summary Get a memorial banner
// @Description Returns the stored banner, or the default colour banner when none was chosen, with the style a page renders for it.
// @Tags Banner
// @Produce json
// @Param id path string true "Memorial ID"
// @Success 200 {object} BannerResponse
// @Failure 500 {object} ErrorResponse
// @Router /memorials/{id}/banner [get]
func (h *BannerHandler) GetBanner(c *fiber.Ctx) error {
	memorialID := c.Params("id")
	settings, err := h.service.GetBanner(c.Context(), memorialID)
	if err != nil {
		logger.Get().Error("Failed to get banner", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}

	resp := BannerResponse{Settings: settings}
	if opt, err := settings.Option(); err == nil {
		style := h.root.StyleFor(opt)
		resp.Style = &style
	} else {
		logger.Get().Warn("Stored banner cannot be rendered",
			zap.String("memorial_id", memorialID),
			zap.Error(err),
		)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ResetBanner handles DELETE /memorials/{id}/banner.
func (h *BannerHandler) ResetBanner(c *fiber.Ctx) error {
	if err := h.service.ResetBanner(c.Context(), c.Params("id")); err != nil {
		logger.Get().Error("Failed to reset banner", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Banner reset to default",
	})
}

// SetEntitlement handles PUT /memorials/{id}/plan.
func (h *BannerHandler) SetEntitlement(c *fiber.Ctx) error {
	var req domain.Entitlement
	if err := c.BodyParser(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.SetEntitlement(c.Context(), c.Params("id"), req); err != nil {
		logger.Get().Error("Failed to set plan entitlement", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(req)
}
