package handlers

import (
	"time"

	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Monthly godoc
// @Summary Monthly analysis report
// @Description Grouped totals and regret diagnostics for one calendar month. Budget analysis and advice require premium; standard users get an empty list and an upgrade prompt.
// @Tags report
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM)"
// @Security Bearer
// @Success 200 {object} dto.ReportResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/report [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	year, month := service.ParseMonth(c.Query("month"), time.Now())

	resp, err := h.reportService.MonthlyAnalysis(c.Context(), userID, year, month)
	if err != nil {
		h.logger.Error("Monthly report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	return c.JSON(resp)
}
