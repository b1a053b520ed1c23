package transaction

import (
	"time"
)

// Kind values accepted for a transaction.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// ValidKind reports whether s is one of the accepted transaction kinds.
func ValidKind(s string) bool {
	return s == KindIncome || s == KindExpense
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	Kind        string    `json:"type"` // "income" or "expense"
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	OccurredOn  time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateTransactionParams struct {
	ID          string // Server-generated UUID
	UserID      int64
	Kind        string
	Amount      float64
	Category    string
	OccurredOn  time.Time
	Description string
}

// UpdateTransactionParams carries the fields present in an update request.
// Nil fields are left untouched; an all-nil update is a valid no-op.
type UpdateTransactionParams struct {
	Kind        *string
	Amount      *float64
	Category    *string
	OccurredOn  *time.Time
	Description *string
}

// Filter is the client-controlled part of a list/statistics query. The
// owner constraint is never part of the filter; it is a separate,
// mandatory argument on every repository call.
type Filter struct {
	From     *time.Time // occurred_on >= From
	To       *time.Time // occurred_on <= To
	Category string     // exact match, empty means no constraint
	Kind     string     // exact match, empty means no constraint
}

// DateOnly returns a copy of f with only the date bounds kept. The
// statistics endpoint ignores category and kind by contract.
func (f Filter) DateOnly() Filter {
	return Filter{From: f.From, To: f.To}
}
