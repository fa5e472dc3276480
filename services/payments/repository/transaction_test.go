package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

func setupPaymentRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Create repo with mocks; Redis stays nil for pure SQL tests
	repo := &PaymentRepo{
		cfg: &models.Config{
			Wallet: models.WalletConfig{PointsPerUSD: 100},
		},
		db: sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateTransaction(t *testing.T) {
	testCases := []struct {
		name       string
		txn        *models.Transaction
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, txn *models.Transaction, err error)
	}{
		{
			name: "Success - Defaults Applied",
			txn: &models.Transaction{
				UserID:        uuid.New(),
				Amount:        55.0,
				Currency:      "USD",
				PaymentMethod: string(models.PaymentMethodStripe),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO transactions").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, txn.ID)
				assert.Equal(t, models.TransactionStatusPending, txn.Status)
				assert.NotNil(t, txn.Metadata)
				assert.False(t, txn.CreatedAt.IsZero())
			},
		},
		{
			name: "Database Error",
			txn: &models.Transaction{
				UserID:        uuid.New(),
				Amount:        10.0,
				Currency:      "USD",
				PaymentMethod: string(models.PaymentMethodWallet),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO transactions").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert transaction")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreateTransaction(context.Background(), tc.txn)
			tc.assertFunc(t, tc.txn, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetTransactionByID(t *testing.T) {
	txnID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	userID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, txn *models.Transaction, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "user_id", "poll_id", "amount", "currency",
					"original_amount", "original_currency", "payment_method",
					"status", "gateway_transaction_id", "metadata",
					"created_at", "updated_at",
				}).AddRow(
					txnID, userID, nil, 55.0, "USD",
					50.0, "EUR", "stripe",
					"failed", "pi_123", []byte(`{"error":"card declined"}`),
					time.Now(), time.Now(),
				)
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(txnID.String()).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.NoError(t, err)
				require.NotNil(t, txn)
				assert.Equal(t, txnID, txn.ID)
				assert.Equal(t, models.TransactionStatusFailed, txn.Status)
				assert.Equal(t, 50.0, txn.OriginalAmount)
				assert.Equal(t, "EUR", txn.OriginalCurrency)
				assert.Equal(t, "card declined", txn.Metadata["error"])
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(txnID.String()).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
				assert.Nil(t, txn)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(txnID.String()).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, payments.ErrTransactionNotFound)
				assert.Nil(t, txn)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			txn, err := repo.GetTransactionByID(context.Background(), txnID.String())
			tc.assertFunc(t, txn, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateTransactionStatus(t *testing.T) {
	txnID := uuid.New().String()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, rows int64, err error)
	}{
		{
			name: "Pending Row Updated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE transactions").
					WithArgs(txnID, "completed", "pi_123", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, rows int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), rows)
			},
		},
		{
			name: "Already Terminal - Zero Rows",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE transactions").
					WithArgs(txnID, "completed", "pi_123", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, rows int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), rows)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE transactions").
					WithArgs(txnID, "completed", "pi_123", sqlmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, rows int64, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to update transaction status")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			rows, err := repo.UpdateTransactionStatus(context.Background(), txnID, models.TransactionStatusCompleted, "pi_123")
			tc.assertFunc(t, rows, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkTransactionFailed(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	txnID := uuid.New().String()

	mock.ExpectExec("^UPDATE transactions").
		WithArgs(txnID, "stripe unavailable", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkTransactionFailed(context.Background(), txnID, "stripe unavailable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
