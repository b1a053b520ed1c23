package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
)

type AuthHandler struct {
	userRepo user.Repository
	jwt      *auth.JWT
}

func NewAuthHandler(userRepo user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, jwt: jwt}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// HandleRegister creates a new user with password authentication.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		respondMessage(w, http.StatusBadRequest, "Email, name, and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if err := auth.CheckPasswordPolicy(req.Password); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password during registration: %v", err)
		respondInternalError(w)
		return
	}

	created, err := h.userRepo.Create(r.Context(), user.CreateUserParams{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, user.ErrDuplicateEmail) {
		respondMessage(w, http.StatusConflict, "User with this email already exists")
		return
	}
	if err != nil {
		log.Printf("Error creating user: %v", err)
		respondInternalError(w)
		return
	}

	token, err := h.jwt.Generate(created.ID, created.Email)
	if err != nil {
		log.Printf("Error generating JWT for new user %d: %v", created.ID, err)
		respondInternalError(w)
		return
	}

	setAuthCookie(w, r, token)
	respondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: created})
}

// HandleLogin authenticates a user with email and password. Unknown email
// and wrong password produce the same response.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error looking up user by email: %v", err)
		respondInternalError(w)
		return
	}
	if u == nil || auth.VerifyPassword(u.PasswordHash, req.Password) != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwt.Generate(u.ID, u.Email)
	if err != nil {
		log.Printf("Error generating JWT for user %d: %v", u.ID, err)
		respondInternalError(w)
		return
	}

	setAuthCookie(w, r, token)
	respondJSON(w, http.StatusOK, AuthResponse{Token: token, User: u})
}

// HandleLogout clears the auth cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Clear the cookie by setting MaxAge to -1
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// setAuthCookie sets the JWT as an HttpOnly cookie.
func setAuthCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours (matches JWT expiration)
	})
}
