package handlers

import (
	"errors"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	ledgerService *service.LedgerService
	exportService *service.ExportService
	logger        *zap.Logger
}

func NewTransactionHandler(ledgerService *service.LedgerService, exportService *service.ExportService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		exportService: exportService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a transaction
// @Description Record an income or expense entry; returns any achievements it unlocked
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.ledgerService.CreateTransaction(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Transaction create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMonth godoc
// @Summary List one month of transactions
// @Description Month filter is YYYY-MM; malformed values fall back to the current month
// @Tags transactions
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM)"
// @Security Bearer
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListMonth(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	year, month := service.ParseMonth(c.Query("month"), time.Now())

	resp, err := h.ledgerService.ListMonth(c.Context(), userID, year, month)
	if err != nil {
		h.logger.Error("Transaction list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a transaction
// @Description Deletes only rows owned by the caller; anything else is 404
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	}

	if err := h.ledgerService.DeleteTransaction(c.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		}
		h.logger.Error("Transaction delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary Export the ledger as CSV
// @Description All transactions, newest first, with localized labels
// @Tags transactions
// @Produce text/csv
// @Security Bearer
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	data, err := h.exportService.CSV(c.Context(), userID)
	if err != nil {
		h.logger.Error("CSV export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export transactions",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="finance_report.csv"`)
	return c.Send(data)
}
