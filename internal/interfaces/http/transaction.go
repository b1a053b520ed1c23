package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"
)

type TransactionHandler struct {
	repo transaction.Repository
}

func NewTransactionHandler(repo transaction.Repository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

type CreateTransactionRequest struct {
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
}

type UpdateTransactionRequest struct {
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

type TransactionResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

// HandleTransactions serves the collection endpoint: list with optional
// filters, or create.
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleTransactionByID serves get, update, and delete on a single record.
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleStatistics aggregates the caller's transactions over an optional
// date range. Category and type filters are not accepted here.
func (h *TransactionHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.repo.List(r.Context(), userID, filter.DateOnly())
	if err != nil {
		log.Printf("Error listing transactions for statistics (user %d): %v", userID, err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, transaction.Summarize(transactions))
}

func (h *TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.repo.List(r.Context(), userID, filter)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", userID, err)
		respondInternalError(w)
		return
	}
	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}

	respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A zero amount counts as absent, same as an omitted field.
	if req.Type == "" || req.Amount == nil || *req.Amount == 0 || req.Category == "" || req.Date == "" {
		respondMessage(w, http.StatusBadRequest, "Type, amount, category, and date are required")
		return
	}
	if !transaction.ValidKind(req.Type) {
		respondMessage(w, http.StatusBadRequest, "Type must be either 'income' or 'expense'")
		return
	}
	if *req.Amount <= 0 {
		respondMessage(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	occurredOn, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)")
		return
	}

	created, err := h.repo.Create(r.Context(), transaction.CreateTransactionParams{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        req.Type,
		Amount:      *req.Amount,
		Category:    req.Category,
		OccurredOn:  occurredOn,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("Error creating transaction for user %d: %v", userID, err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusCreated, TransactionResponse{
		Message:     "Transaction created successfully!",
		Transaction: created,
	})
}

func (h *TransactionHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	tx, err := h.repo.GetByID(r.Context(), userID, id)
	if err != nil {
		log.Printf("Error getting transaction %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if tx == nil {
		respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Absent fields keep their stored values; an empty body is a no-op
	// that still confirms success.
	if req.Type != nil && !transaction.ValidKind(*req.Type) {
		respondMessage(w, http.StatusBadRequest, "Type must be either 'income' or 'expense'")
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		respondMessage(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	params := transaction.UpdateTransactionParams{
		Kind:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		occurredOn, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)")
			return
		}
		params.OccurredOn = &occurredOn
	}

	updated, err := h.repo.Update(r.Context(), userID, id, params)
	if err != nil {
		log.Printf("Error updating transaction %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if updated == nil {
		respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	respondJSON(w, http.StatusOK, TransactionResponse{
		Message:     "Transaction updated successfully!",
		Transaction: updated,
	})
}

func (h *TransactionHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	deleted, err := h.repo.Delete(r.Context(), userID, id)
	if err != nil {
		log.Printf("Error deleting transaction %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if !deleted {
		respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	respondMessage(w, http.StatusOK, "Transaction deleted successfully!")
}

// parseFilter reads the supported query parameters. Unknown parameters are
// ignored; malformed dates are rejected.
func parseFilter(r *http.Request) (transaction.Filter, error) {
	var f transaction.Filter
	q := r.URL.Query()

	if s := q.Get("startDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, errInvalidDate("startDate")
		}
		f.From = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, errInvalidDate("endDate")
		}
		f.To = &t
	}
	f.Category = q.Get("category")
	f.Kind = q.Get("type")

	return f, nil
}

type errInvalidDate string

func (e errInvalidDate) Error() string {
	return "Invalid " + string(e) + " format (use YYYY-MM-DD)"
}
