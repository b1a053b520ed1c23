package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"fintrack/internal/domain/note"
	"fintrack/internal/shared/middleware"
)

type NoteHandler struct {
	repo note.Repository
}

func NewNoteHandler(repo note.Repository) *NoteHandler {
	return &NoteHandler{repo: repo}
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	Message string     `json:"message"`
	Note    *note.Note `json:"note"`
}

func (h *NoteHandler) HandleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *NoteHandler) HandleNoteByID(w http.ResponseWriter, r *http.Request) {
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

func (h *NoteHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := h.repo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing notes for user %d: %v", userID, err)
		respondInternalError(w)
		return
	}
	if notes == nil {
		notes = []*note.Note{}
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Content == "" {
		respondMessage(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	created, err := h.repo.Create(r.Context(), note.CreateNoteParams{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Printf("Error creating note for user %d: %v", userID, err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusCreated, NoteResponse{
		Message: "Note created successfully!",
		Note:    created,
	})
}

func (h *NoteHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	n, err := h.repo.GetByID(r.Context(), userID, id)
	if err != nil {
		log.Printf("Error getting note %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if n == nil {
		respondMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	respondJSON(w, http.StatusOK, n)
}

func (h *NoteHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.repo.Update(r.Context(), userID, id, note.UpdateNoteParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Printf("Error updating note %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if updated == nil {
		respondMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	respondJSON(w, http.StatusOK, NoteResponse{
		Message: "Note updated successfully!",
		Note:    updated,
	})
}

func (h *NoteHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, "Note ID is required")
		return
	}

	deleted, err := h.repo.Delete(r.Context(), userID, id)
	if err != nil {
		log.Printf("Error deleting note %s: %v", id, err)
		respondInternalError(w)
		return
	}
	if !deleted {
		respondMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	respondMessage(w, http.StatusOK, "Note deleted successfully!")
}
