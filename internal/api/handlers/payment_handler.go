package handlers

import (
	"errors"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Checkout godoc
// @Summary Start a premium upgrade
// @Description Creates a Pending order; the client forwards the trade number to the external checkout page
// @Tags payment
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.CheckoutResponse
// @Router /api/v1/payment/checkout [post]
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.paymentService.Checkout(c.Context(), userID)
	if err != nil {
		h.logger.Error("Checkout failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Confirm godoc
// @Summary Confirm a payment return
// @Description Verifies the returned trade number; on success the order is Paid and the account becomes premium
// @Tags payment
// @Accept json
// @Produce json
// @Param request body dto.ConfirmPaymentRequest true "Confirmation"
// @Security Bearer
// @Success 200 {object} dto.ConfirmPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/payment/confirm [post]
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil || req.TradeNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Trade number is required",
		})
	}

	resp, err := h.paymentService.Confirm(c.Context(), userID, req.TradeNo)
	if err != nil {
		if errors.Is(err, service.ErrPaymentVerification) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Payment verification failed",
			})
		}
		h.logger.Error("Payment confirm failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to confirm payment",
		})
	}

	return c.JSON(resp)
}
