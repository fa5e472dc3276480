package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments/mocks"
	"github.com/stretchr/testify/assert"
)

func TestInitializeStripePayment_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, nil)

	userID := uuid.New()
	var txnID string

	mockRepo.EXPECT().
		GetExchangeRate(gomock.Any(), "EUR", "USD").
		Return(1.1, nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.InDelta(t, 55.0, txn.Amount, 0.0001)
			assert.Equal(t, "USD", txn.Currency)
			assert.Equal(t, 50.0, txn.OriginalAmount)
			assert.Equal(t, "EUR", txn.OriginalCurrency)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			txn.ID = uuid.New()
			txnID = txn.ID.String()
			return nil
		})
	mockGW.EXPECT().
		CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
			assert.InDelta(t, 55.0, req.Amount, 0.0001)
			assert.Equal(t, "USD", req.Currency)
			return &models.PaymentIntentResponse{
				ClientSecret:    "cs_test_secret",
				PaymentIntentID: "pi_123",
			}, nil
		})
	mockRepo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusPending, "pi_123").
		Return(int64(1), nil)

	result, err := uc.InitializeStripePayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   userID.String(),
		Amount:   50.0,
		Currency: "EUR",
	})

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_secret", result.ClientSecret)
	assert.Equal(t, txnID, result.TransactionID)
}

func TestInitializeStripePayment_GatewayFailureMarksTransactionFailed(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, nil)

	userID := uuid.New()
	gatewayErr := errors.New("stripe unavailable")

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(nil, gatewayErr)
	mockRepo.EXPECT().
		MarkTransactionFailed(gomock.Any(), gomock.Any(), "stripe unavailable").
		Return(nil)
	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any()).
		DoAndReturn(func(event *models.TransactionEvent) error {
			assert.Equal(t, models.TransactionStatusFailed, event.Status)
			return nil
		})

	result, err := uc.InitializeStripePayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   userID.String(),
		Amount:   10.0,
		Currency: "USD",
	})

	assert.ErrorIs(t, err, gatewayErr)
	assert.Nil(t, result)
}

func TestInitializeStripePayment_ConversionFailureCreatesNothing(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t, nil)

	mockRepo.EXPECT().
		GetExchangeRate(gomock.Any(), "XYZ", "USD").
		Return(0.0, assert.AnError)

	result, err := uc.InitializeStripePayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   uuid.New().String(),
		Amount:   10.0,
		Currency: "XYZ",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestInitializePaystackPayment_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, &models.Config{
		Paystack: models.PaystackConfig{Currency: "NGN"},
	})

	userID := uuid.New()

	mockRepo.EXPECT().
		GetExchangeRate(gomock.Any(), "USD", "NGN").
		Return(1500.0, nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.InDelta(t, 15000.0, txn.Amount, 0.0001)
			assert.Equal(t, "NGN", txn.Currency)
			txn.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		InitiatePaystackTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.PaystackInitRequest) (*models.PaystackInitResponse, error) {
			assert.Equal(t, "NGN", req.Currency)
			assert.Equal(t, "user@example.com", req.Email)
			return &models.PaystackInitResponse{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				Reference:        "ref_abc123",
			}, nil
		})
	mockRepo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusPending, "ref_abc123").
		Return(int64(1), nil)

	result, err := uc.InitializePaystackPayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   userID.String(),
		Amount:   10.0,
		Currency: "USD",
		Email:    "user@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
	assert.NotEmpty(t, result.TransactionID)
}

func TestInitializePaystackPayment_GatewayFailureMarksTransactionFailed(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, &models.Config{
		Paystack: models.PaystackConfig{Currency: "USD"},
	})

	gatewayErr := errors.New("paystack initiation failed with status 502")

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		InitiatePaystackTransaction(gomock.Any(), gomock.Any()).
		Return(nil, gatewayErr)
	mockRepo.EXPECT().
		MarkTransactionFailed(gomock.Any(), gomock.Any(), gatewayErr.Error()).
		Return(nil)
	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any()).
		Return(nil)

	result, err := uc.InitializePaystackPayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   uuid.New().String(),
		Amount:   10.0,
		Currency: "USD",
	})

	assert.ErrorIs(t, err, gatewayErr)
	assert.Nil(t, result)
}

func TestInitializeStripePayment_ReferenceStoreFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(&models.PaymentIntentResponse{
			ClientSecret:    "cs_test_secret",
			PaymentIntentID: "pi_456",
		}, nil)
	// The intent already exists, so a reference store failure is not surfaced
	mockRepo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusPending, "pi_456").
		Return(int64(0), assert.AnError)

	result, err := uc.InitializeStripePayment(context.Background(), &models.GatewayPaymentRequest{
		UserID:   uuid.New().String(),
		Amount:   10.0,
		Currency: "USD",
	})

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_secret", result.ClientSecret)
}
