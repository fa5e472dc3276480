package usecase

import (
	"context"

	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/models"
)

// InitializeStripePayment creates a pending transaction in the gateway's
// required currency (USD) and requests a payment intent. The returned client
// secret drives the embedded payment form.
func (uc *PaymentUC) InitializeStripePayment(ctx context.Context, req *models.GatewayPaymentRequest) (*models.StripeInitResult, error) {
	txn, err := uc.createGatewayTransaction(ctx, req, usdCurrency, models.PaymentMethodStripe)
	if err != nil {
		return nil, err
	}

	resp, err := uc.paymentGW.CreatePaymentIntent(ctx, &models.PaymentIntentRequest{
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		TransactionID: txn.ID.String(),
		UserID:        req.UserID,
	})
	if err != nil {
		uc.failGatewayTransaction(ctx, txn, err)
		return nil, err
	}

	uc.recordGatewayReference(ctx, txn, resp.PaymentIntentID)

	return &models.StripeInitResult{
		ClientSecret:  resp.ClientSecret,
		TransactionID: txn.ID.String(),
	}, nil
}

// InitializePaystackPayment creates a pending transaction in the
// aggregator's settlement currency and requests a hosted checkout URL
func (uc *PaymentUC) InitializePaystackPayment(ctx context.Context, req *models.GatewayPaymentRequest) (*models.PaystackInitResult, error) {
	txn, err := uc.createGatewayTransaction(ctx, req, uc.cfg.Paystack.Currency, models.PaymentMethodPaystack)
	if err != nil {
		return nil, err
	}

	resp, err := uc.paymentGW.InitiatePaystackTransaction(ctx, &models.PaystackInitRequest{
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		TransactionID: txn.ID.String(),
		UserID:        req.UserID,
		Email:         req.Email,
	})
	if err != nil {
		uc.failGatewayTransaction(ctx, txn, err)
		return nil, err
	}

	uc.recordGatewayReference(ctx, txn, resp.Reference)

	return &models.PaystackInitResult{
		AuthorizationURL: resp.AuthorizationURL,
		TransactionID:    txn.ID.String(),
	}, nil
}

// createGatewayTransaction converts the requested amount into the gateway's
// required currency and records a pending transaction for it
func (uc *PaymentUC) createGatewayTransaction(ctx context.Context, req *models.GatewayPaymentRequest, targetCurrency string, method models.PaymentMethodType) (*models.Transaction, error) {
	amount, err := uc.ConvertAmount(ctx, req.Amount, req.Currency, targetCurrency)
	if err != nil {
		return nil, err
	}

	return uc.CreateTransaction(ctx, &models.CreateTransactionRequest{
		UserID:           req.UserID,
		PollID:           req.PollID,
		Amount:           amount,
		Currency:         targetCurrency,
		OriginalAmount:   req.Amount,
		OriginalCurrency: req.Currency,
		PaymentMethod:    string(method),
		Status:           models.TransactionStatusPending,
	})
}

// failGatewayTransaction marks a transaction failed after a gateway round
// trip error, recording the error text in its metadata
func (uc *PaymentUC) failGatewayTransaction(ctx context.Context, txn *models.Transaction, gatewayErr error) {
	if err := uc.paymentRepo.MarkTransactionFailed(ctx, txn.ID.String(), gatewayErr.Error()); err != nil {
		logger.Error("Failed to mark transaction as failed",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}

	txn.Status = models.TransactionStatusFailed
	uc.publishTransactionEvent(txn)
}

// recordGatewayReference stores the gateway's reference id on a still
// pending transaction. The intent already exists at this point, so a store
// failure is logged and the initiation still succeeds; the webhook reconciles
// by reference.
func (uc *PaymentUC) recordGatewayReference(ctx context.Context, txn *models.Transaction, reference string) {
	if _, err := uc.paymentRepo.UpdateTransactionStatus(ctx, txn.ID.String(), models.TransactionStatusPending, reference); err != nil {
		logger.Warn("Failed to record gateway reference",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("reference", reference),
			logger.Err(err))
		return
	}
	txn.GatewayTransactionID = reference
}
