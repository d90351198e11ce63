package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Update godoc
// @Summary Update category budgets
// @Description Batch upsert over the fixed category catalog. Categories with malformed amounts are skipped; valid ones still commit.
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetsRequest true "Category limits"
// @Security Bearer
// @Success 200 {object} dto.UpdateBudgetsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/budgets [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateBudgetsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.budgetService.UpdateBatch(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Budget update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update budgets",
		})
	}

	return c.JSON(resp)
}

// List godoc
// @Summary List category budgets
// @Tags budgets
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BudgetResponse
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.budgetService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Budget list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list budgets",
		})
	}

	return c.JSON(resp)
}
