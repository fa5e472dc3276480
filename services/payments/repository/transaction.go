package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// CreateTransaction inserts a new transaction row
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	if txn.Status == "" {
		txn.Status = models.TransactionStatusPending
	}
	if txn.Metadata == nil {
		txn.Metadata = models.Metadata{}
	}

	query := `
		INSERT INTO transactions (id, user_id, poll_id, amount, currency,
			original_amount, original_currency, payment_method, status,
			gateway_transaction_id, metadata, created_at, updated_at
		) VALUES (:id, :user_id, :poll_id, :amount, :currency,
			:original_amount, :original_currency, :payment_method, :status,
			:gateway_transaction_id, :metadata, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by its ID
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, poll_id, amount, currency, original_amount,
			original_currency, payment_method, status, gateway_transaction_id,
			metadata, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// UpdateTransactionStatus moves a pending transaction to a new status and
// optionally records the gateway reference. Terminal rows are never touched;
// the returned row count lets the caller distinguish "already terminal" from
// "missing".
func (r *PaymentRepo) UpdateTransactionStatus(ctx context.Context, transactionID string, status models.TransactionStatus, gatewayTxID string) (int64, error) {
	query := `
		UPDATE transactions
		SET status = $2,
			gateway_transaction_id = CASE WHEN $3 <> '' THEN $3 ELSE gateway_transaction_id END,
			updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, transactionID, status, gatewayTxID, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}

	return rows, nil
}

// MarkTransactionFailed marks a transaction failed and records the gateway
// error text in its metadata
func (r *PaymentRepo) MarkTransactionFailed(ctx context.Context, transactionID string, gatewayErr string) error {
	query := `
		UPDATE transactions
		SET status = 'failed',
			metadata = metadata || jsonb_build_object('error', $2::text),
			updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	_, err := r.db.ExecContext(ctx, query, transactionID, gatewayErr, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}

	return nil
}
