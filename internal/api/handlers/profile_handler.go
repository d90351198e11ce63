package handlers

import (
	"errors"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService  *service.ProfileService
	feedbackService *service.FeedbackService
	logger          *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, feedbackService *service.FeedbackService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Get godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Profile fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load profile",
		})
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update display profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/v1/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.profileService.Update(c.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Profile update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword godoc
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/v1/profile/password [put]
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.profileService.ChangePassword(c.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Old password is incorrect",
			})
		}
		h.logger.Error("Password change failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to change password",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Feedback godoc
// @Summary Submit feedback
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback"
// @Security Bearer
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /api/v1/feedback [post]
func (h *ProfileHandler) Feedback(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.feedbackService.Submit(c.Context(), userID, req.Message); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Feedback submit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit feedback",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}
