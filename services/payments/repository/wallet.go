package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// DebitWalletAndRecord debits wallet points and records the completed
// transaction in a single database transaction. The conditional update keeps
// the balance check and the debit atomic, so a row is only written when the
// user can actually afford it.
func (r *PaymentRepo) DebitWalletAndRecord(ctx context.Context, userID string, points int64, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	if txn.Metadata == nil {
		txn.Metadata = models.Metadata{}
	}

	// Begin transaction
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Debit points, guarded by the available balance
	debitQuery := `
		UPDATE profiles
		SET points = points - $1, updated_at = $2
		WHERE user_id = $3 AND points >= $1
	`
	result, err := tx.ExecContext(ctx, debitQuery, points, now, userID)
	if err != nil {
		return fmt.Errorf("failed to debit wallet points: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read debit result: %w", err)
	}
	if rows == 0 {
		return payments.ErrInsufficientPoints
	}

	// Record the completed transaction
	insertQuery := `
		INSERT INTO transactions (id, user_id, poll_id, amount, currency,
			original_amount, original_currency, payment_method, status,
			gateway_transaction_id, metadata, created_at, updated_at
		) VALUES (:id, :user_id, :poll_id, :amount, :currency,
			:original_amount, :original_currency, :payment_method, :status,
			:gateway_transaction_id, :metadata, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, insertQuery, txn); err != nil {
		return fmt.Errorf("failed to insert wallet transaction: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
