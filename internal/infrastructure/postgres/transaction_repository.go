package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, type, amount, category, occurred_on, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, type, amount, category, occurred_on, description, created_at, updated_at
	`

	var tx transaction.Transaction
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Kind, params.Amount,
		params.Category, params.OccurredOn, params.Description,
	).Scan(
		&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Category,
		&tx.OccurredOn, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &tx, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID int64, id string) (*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, occurred_on, description, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND id = $2
	`

	var tx transaction.Transaction
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Category,
		&tx.OccurredOn, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Not found (or owned by someone else, which is the same thing)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// transactionListOrder sorts listings newest first: by the day the
// transaction happened, then by insertion order within that day.
const transactionListOrder = "occurred_on DESC, created_at DESC"

func buildListQuery(userID int64, filter transaction.Filter) (string, []any) {
	where, args := compileFilter(userID, filter)
	query := `
		SELECT id, user_id, type, amount, category, occurred_on, description, created_at, updated_at
		FROM transactions
		WHERE ` + where + `
		ORDER BY ` + transactionListOrder
	return query, args
}

func (r *TransactionRepository) List(ctx context.Context, userID int64, filter transaction.Filter) ([]*transaction.Transaction, error) {
	query, args := buildListQuery(userID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		var tx transaction.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Category,
			&tx.OccurredOn, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, userID int64, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
	query := `
		UPDATE transactions
		SET type = COALESCE($1, type),
		    amount = COALESCE($2, amount),
		    category = COALESCE($3, category),
		    occurred_on = COALESCE($4, occurred_on),
		    description = COALESCE($5, description),
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $6 AND id = $7
		RETURNING id, user_id, type, amount, category, occurred_on, description, created_at, updated_at
	`

	var tx transaction.Transaction
	err := r.db.QueryRowContext(
		ctx, query,
		params.Kind, params.Amount, params.Category, params.OccurredOn, params.Description,
		userID, id,
	).Scan(
		&tx.ID, &tx.UserID, &tx.Kind, &tx.Amount, &tx.Category,
		&tx.OccurredOn, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	query := `DELETE FROM transactions WHERE user_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}
