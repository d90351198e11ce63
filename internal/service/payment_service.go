package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tradeNoLen keeps trade numbers within the common 20-character limit of
// checkout providers.
const tradeNoLen = 20

func newTradeNo() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "FT" + raw[:tradeNoLen-2]
}

type PaymentService struct {
	userRepo  *repository.UserRepository
	orderRepo *repository.OrderRepository
	price     int64
	logger    *zap.Logger
}

func NewPaymentService(userRepo *repository.UserRepository, orderRepo *repository.OrderRepository, price int64, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		price:     price,
		logger:    logger,
	}
}

// Checkout creates a Pending order before the client is redirected to the
// external payment page. The checksum protocol of the provider is the
// provider's concern; we only hand out the trade number and amount.
func (s *PaymentService) Checkout(ctx context.Context, userID uuid.UUID) (*dto.CheckoutResponse, error) {
	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		TradeNo:   newTradeNo(),
		Amount:    s.price,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Payment order created",
		zap.String("user_id", userID.String()),
		zap.String("trade_no", order.TradeNo),
	)

	return &dto.CheckoutResponse{
		TradeNo: order.TradeNo,
		Amount:  order.Amount,
	}, nil
}

// Confirm handles the provider's return callback. Unknown trade numbers and
// ownership mismatches fail verification without touching any state; a
// repeated confirm of an already-paid order is a no-op success.
func (s *PaymentService) Confirm(ctx context.Context, userID uuid.UUID, tradeNo string) (*dto.ConfirmPaymentResponse, error) {
	order, err := s.orderRepo.GetByTradeNo(ctx, tradeNo)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPaymentVerification
		}
		return nil, err
	}

	if order.UserID != userID {
		s.logger.Warn("Payment confirm ownership mismatch",
			zap.String("trade_no", tradeNo),
			zap.String("user_id", userID.String()),
		)
		return nil, ErrPaymentVerification
	}

	if order.Status != models.OrderStatusPaid {
		// MarkPaid only flips pending rows; losing the race to a concurrent
		// confirm of the same order is fine either way.
		if _, err := s.orderRepo.MarkPaid(ctx, order.ID, time.Now()); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.SetPremium(ctx, userID, true); err != nil {
		return nil, err
	}

	s.logger.Info("Payment confirmed",
		zap.String("user_id", userID.String()),
		zap.String("trade_no", tradeNo),
	)

	return &dto.ConfirmPaymentResponse{
		TradeNo: tradeNo,
		Status:  string(models.OrderStatusPaid),
		Premium: true,
	}, nil
}
