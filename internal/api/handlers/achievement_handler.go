package handlers

import (
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AchievementHandler struct {
	achService *service.AchievementService
	logger     *zap.Logger
}

func NewAchievementHandler(achService *service.AchievementService, logger *zap.Logger) *AchievementHandler {
	return &AchievementHandler{
		achService: achService,
		logger:     logger,
	}
}

// List godoc
// @Summary List achievements
// @Description Full catalog with the caller's unlocked flags
// @Tags achievements
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AchievementResponse
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.achService.ListForUser(c.Context(), userID)
	if err != nil {
		h.logger.Error("Achievement list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list achievements",
		})
	}

	return c.JSON(resp)
}
