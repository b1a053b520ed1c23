package transaction

// Statistics summarizes a set of transactions for one user.
type Statistics struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// Summarize folds a transaction set into income/expense/balance totals.
// It is a pure function recomputed on every call; the empty set yields
// all zeros.
func Summarize(txs []*Transaction) Statistics {
	var stats Statistics
	for _, tx := range txs {
		switch tx.Kind {
		case KindIncome:
			stats.TotalIncome += tx.Amount
		case KindExpense:
			stats.TotalExpense += tx.Amount
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense
	stats.TransactionCount = len(txs)
	return stats
}
