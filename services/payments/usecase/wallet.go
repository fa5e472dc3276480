package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// ProcessWalletPayment pays for a promotion with wallet points. The amount
// is normalized to USD, converted to points at the configured rate, and the
// debit plus the completed transaction row are written atomically.
func (uc *PaymentUC) ProcessWalletPayment(ctx context.Context, req *models.WalletPaymentRequest) (*models.Transaction, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.Wallet.DefaultCurrency
	}

	pointsRate, err := uc.paymentRepo.GetPointsPerUSD(ctx)
	if err != nil {
		return nil, err
	}

	amountUSD := req.Amount
	exchangeRate := 1.0
	if currency != usdCurrency {
		amountUSD, err = uc.ConvertAmount(ctx, req.Amount, currency, usdCurrency)
		if err != nil {
			return nil, err
		}
		if req.Amount != 0 {
			exchangeRate = amountUSD / req.Amount
		}
	}

	pointsNeeded := int64(math.Round(amountUSD * pointsRate))

	profile, err := uc.paymentRepo.GetProfileByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if profile.Points < pointsNeeded {
		return nil, fmt.Errorf("%w: need %d points, have %d",
			payments.ErrInsufficientPoints, pointsNeeded, profile.Points)
	}

	var pollID *uuid.UUID
	if req.PollID != "" {
		id, err := uuid.Parse(req.PollID)
		if err != nil {
			return nil, fmt.Errorf("invalid poll id: %w", err)
		}
		pollID = &id
	}

	txn := &models.Transaction{
		UserID:           userID,
		PollID:           pollID,
		Amount:           amountUSD,
		Currency:         usdCurrency,
		OriginalAmount:   req.Amount,
		OriginalCurrency: currency,
		PaymentMethod:    string(models.PaymentMethodWallet),
		Status:           models.TransactionStatusCompleted,
		Metadata: models.Metadata{
			"points_used":     pointsNeeded,
			"conversion_rate": pointsRate,
			"exchange_rate":   exchangeRate,
		},
	}

	if err := uc.paymentRepo.DebitWalletAndRecord(ctx, req.UserID, pointsNeeded, txn); err != nil {
		return nil, err
	}

	logger.Info("Wallet payment completed",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("user_id", req.UserID),
		logger.Int64("points_used", pointsNeeded),
		logger.Float64("amount_usd", amountUSD))

	uc.publishTransactionEvent(txn)

	return txn, nil
}

// publishTransactionEvent publishes a lifecycle event for a transaction.
// Event delivery is best effort; failures are logged, never surfaced.
func (uc *PaymentUC) publishTransactionEvent(txn *models.Transaction) {
	event := &models.TransactionEvent{
		TransactionID:        txn.ID.String(),
		UserID:               txn.UserID.String(),
		Status:               txn.Status,
		PaymentMethod:        txn.PaymentMethod,
		Amount:               txn.Amount,
		Currency:             txn.Currency,
		GatewayTransactionID: txn.GatewayTransactionID,
		OccurredAt:           time.Now(),
	}
	if txn.PollID != nil {
		event.PollID = txn.PollID.String()
	}

	if err := uc.paymentGW.PublishTransactionEvent(event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", event.TransactionID),
			logger.String("status", string(event.Status)),
			logger.Err(err))
	}
}
