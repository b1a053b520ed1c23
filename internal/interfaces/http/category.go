package http

import (
	"net/http"

	"fintrack/internal/domain/transaction"
)

// HandleCategories returns the suggested category taxonomy. It is advisory:
// transactions may carry any category string.
func HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	respondJSON(w, http.StatusOK, transaction.Categories)
}
