package postgres

import (
	"fmt"
	"strings"

	"fintrack/internal/domain/transaction"
)

// compileFilter translates a transaction filter into a WHERE clause and
// its positional arguments. The owner constraint always comes first and
// cannot be omitted; the client-controlled constraints are appended only
// when set. An inverted date range compiles to a contradiction and simply
// matches nothing.
func compileFilter(userID int64, f transaction.Filter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	add := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.From != nil {
		add("occurred_on >= $%d", *f.From)
	}
	if f.To != nil {
		add("occurred_on <= $%d", *f.To)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Kind != "" {
		add("type = $%d", f.Kind)
	}

	return strings.Join(conds, " AND "), args
}
