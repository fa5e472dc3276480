package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
	"github.com/stretchr/testify/assert"
)

func TestProcessWalletPayment_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, &models.Config{
		Wallet: models.WalletConfig{DefaultCurrency: "USD"},
	})

	userID := uuid.New()
	pollID := uuid.New()
	req := &models.WalletPaymentRequest{
		UserID:   userID.String(),
		PollID:   pollID.String(),
		Amount:   50.0,
		Currency: "EUR",
	}

	mockRepo.EXPECT().
		GetPointsPerUSD(gomock.Any()).
		Return(100.0, nil)
	mockRepo.EXPECT().
		GetExchangeRate(gomock.Any(), "EUR", "USD").
		Return(1.1, nil)
	mockRepo.EXPECT().
		GetProfileByUserID(gomock.Any(), userID.String()).
		Return(&models.Profile{UserID: userID, Points: 10000}, nil)

	mockRepo.EXPECT().
		DebitWalletAndRecord(gomock.Any(), userID.String(), int64(5500), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points int64, txn *models.Transaction) error {
			assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
			assert.Equal(t, string(models.PaymentMethodWallet), txn.PaymentMethod)
			assert.InDelta(t, 55.0, txn.Amount, 0.0001)
			assert.Equal(t, "USD", txn.Currency)
			assert.Equal(t, 50.0, txn.OriginalAmount)
			assert.Equal(t, "EUR", txn.OriginalCurrency)
			assert.Equal(t, int64(5500), txn.Metadata["points_used"])
			txn.ID = uuid.New()
			return nil
		})

	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any()).
		DoAndReturn(func(event *models.TransactionEvent) error {
			assert.Equal(t, models.TransactionStatusCompleted, event.Status)
			assert.Equal(t, userID.String(), event.UserID)
			return nil
		})

	txn, err := uc.ProcessWalletPayment(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestProcessWalletPayment_InsufficientPoints(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t, &models.Config{
		Wallet: models.WalletConfig{DefaultCurrency: "USD"},
	})

	userID := uuid.New()
	req := &models.WalletPaymentRequest{
		UserID:   userID.String(),
		Amount:   55.0,
		Currency: "USD",
	}

	mockRepo.EXPECT().
		GetPointsPerUSD(gomock.Any()).
		Return(100.0, nil)
	mockRepo.EXPECT().
		GetProfileByUserID(gomock.Any(), userID.String()).
		Return(&models.Profile{UserID: userID, Points: 100}, nil)

	// No debit and no event when the balance cannot cover the cost
	txn, err := uc.ProcessWalletPayment(context.Background(), req)

	assert.ErrorIs(t, err, payments.ErrInsufficientPoints)
	assert.Nil(t, txn)
}

func TestProcessWalletPayment_DefaultsCurrency(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, &models.Config{
		Wallet: models.WalletConfig{DefaultCurrency: "USD"},
	})

	userID := uuid.New()
	req := &models.WalletPaymentRequest{
		UserID: userID.String(),
		Amount: 10.0,
	}

	mockRepo.EXPECT().
		GetPointsPerUSD(gomock.Any()).
		Return(100.0, nil)
	mockRepo.EXPECT().
		GetProfileByUserID(gomock.Any(), userID.String()).
		Return(&models.Profile{UserID: userID, Points: 1500}, nil)
	mockRepo.EXPECT().
		DebitWalletAndRecord(gomock.Any(), userID.String(), int64(1000), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any()).
		Return(nil)

	txn, err := uc.ProcessWalletPayment(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "USD", txn.Currency)
	assert.Equal(t, "USD", txn.OriginalCurrency)
}

func TestProcessWalletPayment_InvalidUserID(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)

	txn, err := uc.ProcessWalletPayment(context.Background(), &models.WalletPaymentRequest{
		UserID: "not-a-uuid",
		Amount: 10.0,
	})

	assert.Error(t, err)
	assert.Nil(t, txn)
}

func TestProcessWalletPayment_ProfileNotFound(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t, &models.Config{
		Wallet: models.WalletConfig{DefaultCurrency: "USD"},
	})

	userID := uuid.New()

	mockRepo.EXPECT().
		GetPointsPerUSD(gomock.Any()).
		Return(100.0, nil)
	mockRepo.EXPECT().
		GetProfileByUserID(gomock.Any(), userID.String()).
		Return(nil, payments.ErrProfileNotFound)

	_, err := uc.ProcessWalletPayment(context.Background(), &models.WalletPaymentRequest{
		UserID:   userID.String(),
		Amount:   10.0,
		Currency: "USD",
	})

	assert.ErrorIs(t, err, payments.ErrProfileNotFound)
}

func TestProcessWalletPayment_EventFailureDoesNotFailPayment(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, &models.Config{
		Wallet: models.WalletConfig{DefaultCurrency: "USD"},
	})

	userID := uuid.New()

	mockRepo.EXPECT().
		GetPointsPerUSD(gomock.Any()).
		Return(100.0, nil)
	mockRepo.EXPECT().
		GetProfileByUserID(gomock.Any(), userID.String()).
		Return(&models.Profile{UserID: userID, Points: 5000}, nil)
	mockRepo.EXPECT().
		DebitWalletAndRecord(gomock.Any(), userID.String(), int64(1000), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any()).
		Return(assert.AnError)

	txn, err := uc.ProcessWalletPayment(context.Background(), &models.WalletPaymentRequest{
		UserID:   userID.String(),
		Amount:   10.0,
		Currency: "USD",
	})

	assert.NoError(t, err)
	assert.NotNil(t, txn)
}
