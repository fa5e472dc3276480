package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// CreateTransaction records a new transaction, defaulting to pending. When
// the caller has not already normalized the amount, it is converted into the
// profile's preferred currency and the request values are preserved as the
// original amount/currency.
func (uc *PaymentUC) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	var pollID *uuid.UUID
	if req.PollID != "" {
		id, err := uuid.Parse(req.PollID)
		if err != nil {
			return nil, fmt.Errorf("invalid poll id: %w", err)
		}
		pollID = &id
	}

	amount := req.Amount
	currency := req.Currency
	originalAmount := req.OriginalAmount
	originalCurrency := req.OriginalCurrency

	if originalCurrency == "" {
		// Caller passed a raw amount: normalize to the user's preferred
		// currency and keep what the user saw as the original
		originalAmount = req.Amount
		originalCurrency = req.Currency

		profile, err := uc.paymentRepo.GetProfileByUserID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}

		if profile.PreferredCurrency != "" && profile.PreferredCurrency != req.Currency {
			amount, err = uc.ConvertAmount(ctx, req.Amount, req.Currency, profile.PreferredCurrency)
			if err != nil {
				return nil, err
			}
			currency = profile.PreferredCurrency
		}
	}

	status := req.Status
	if status == "" {
		status = models.TransactionStatusPending
	}

	txn := &models.Transaction{
		UserID:           userID,
		PollID:           pollID,
		Amount:           amount,
		Currency:         currency,
		OriginalAmount:   originalAmount,
		OriginalCurrency: originalCurrency,
		PaymentMethod:    req.PaymentMethod,
		Status:           status,
		Metadata:         req.Metadata,
	}

	if err := uc.paymentRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// UpdateTransactionStatus updates a transaction's status and gateway
// reference. A zero-row update triggers a re-read: a row already sitting in
// a terminal status is treated as success, so a webhook racing this call to
// the same terminal state never produces a spurious "not found".
func (uc *PaymentUC) UpdateTransactionStatus(ctx context.Context, transactionID string, status models.TransactionStatus, gatewayTxID string) error {
	rows, err := uc.paymentRepo.UpdateTransactionStatus(ctx, transactionID, status, gatewayTxID)
	if err != nil {
		return err
	}

	if rows == 0 {
		txn, err := uc.paymentRepo.GetTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn.Status.IsTerminal() {
			logger.Info("Transaction already in terminal status, treating update as success",
				logger.String("transaction_id", transactionID),
				logger.String("status", string(txn.Status)),
				logger.String("requested_status", string(status)))
			return nil
		}
		return payments.ErrTransactionNotFound
	}

	txn, err := uc.paymentRepo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, payments.ErrTransactionNotFound) {
			logger.Warn("Failed to load transaction for event publishing",
				logger.String("transaction_id", transactionID),
				logger.Err(err))
		}
		return nil
	}
	uc.publishTransactionEvent(txn)

	return nil
}
