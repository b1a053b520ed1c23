package http

import (
	"log"
	"net/http"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/middleware"
)

type UserHandler struct {
	userRepo user.Repository
}

func NewUserHandler(userRepo user.Repository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// HandleMe returns the authenticated user.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting user %d: %v", userID, err)
		respondInternalError(w)
		return
	}
	if u == nil {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, u)
}
