package usecase

import (
	"context"
	"fmt"

	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// loadRetryableTransaction loads a failed transaction and verifies the
// caller owns it
func (uc *PaymentUC) loadRetryableTransaction(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	txn, err := uc.paymentRepo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.UserID.String() != userID {
		return nil, payments.ErrTransactionNotFound
	}
	if txn.Status != models.TransactionStatusFailed {
		return nil, fmt.Errorf("%w: status is %s", payments.ErrRetryNotAllowed, txn.Status)
	}

	return txn, nil
}

// GetRetryPaymentOptions loads everything the retry-payment dialog needs:
// the failed transaction, the methods selectable for its currency, and the
// current exchange rates for rendering converted point costs. Stripe-typed
// methods are excluded whenever no publishable key is configured, since the
// embedded payment form cannot initialize without one.
func (uc *PaymentUC) GetRetryPaymentOptions(ctx context.Context, userID, transactionID, countryCode string) (*models.RetryPaymentOptions, error) {
	txn, err := uc.loadRetryableTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	methods, err := uc.GetAvailablePaymentMethods(ctx, countryCode, txn.OriginalCurrency)
	if err != nil {
		return nil, err
	}

	if uc.cfg.Stripe.PublishableKey == "" {
		filtered := methods[:0]
		for _, method := range methods {
			if method.Type != models.PaymentMethodStripe {
				filtered = append(filtered, method)
			}
		}
		methods = filtered
	}

	rates, err := uc.paymentRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, err
	}

	return &models.RetryPaymentOptions{
		Transaction: txn,
		Methods:     methods,
		Rates:       rates,
	}, nil
}

// RetryPromotionPayment re-invokes initiation for a failed promotion payment
// with the user's chosen method. The result carries exactly one
// continuation: completed (wallet), a client secret (stripe), or an
// authorization URL (paystack).
func (uc *PaymentUC) RetryPromotionPayment(ctx context.Context, req *models.RetryPaymentRequest) (*models.RetryPaymentResult, error) {
	txn, err := uc.loadRetryableTransaction(ctx, req.UserID, req.TransactionID)
	if err != nil {
		return nil, err
	}

	pollID := ""
	if txn.PollID != nil {
		pollID = txn.PollID.String()
	}

	switch models.PaymentMethodType(req.MethodType) {
	case models.PaymentMethodWallet:
		completed, err := uc.ProcessWalletPayment(ctx, &models.WalletPaymentRequest{
			UserID:   req.UserID,
			PollID:   pollID,
			Amount:   txn.OriginalAmount,
			Currency: txn.OriginalCurrency,
		})
		if err != nil {
			return nil, err
		}
		return &models.RetryPaymentResult{
			TransactionID: completed.ID.String(),
			Completed:     true,
		}, nil

	case models.PaymentMethodStripe:
		if uc.cfg.Stripe.PublishableKey == "" {
			return nil, payments.ErrMethodNotAvailable
		}
		result, err := uc.InitializeStripePayment(ctx, &models.GatewayPaymentRequest{
			UserID:   req.UserID,
			PollID:   pollID,
			Amount:   txn.OriginalAmount,
			Currency: txn.OriginalCurrency,
			Email:    req.Email,
		})
		if err != nil {
			return nil, err
		}
		return &models.RetryPaymentResult{
			TransactionID: result.TransactionID,
			ClientSecret:  result.ClientSecret,
		}, nil

	case models.PaymentMethodPaystack:
		result, err := uc.InitializePaystackPayment(ctx, &models.GatewayPaymentRequest{
			UserID:   req.UserID,
			PollID:   pollID,
			Amount:   txn.OriginalAmount,
			Currency: txn.OriginalCurrency,
			Email:    req.Email,
		})
		if err != nil {
			return nil, err
		}
		return &models.RetryPaymentResult{
			TransactionID:    result.TransactionID,
			AuthorizationURL: result.AuthorizationURL,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", payments.ErrMethodNotAvailable, req.MethodType)
}
