package note

import (
	"time"
)

type Note struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateNoteParams struct {
	ID      string // Server-generated UUID
	UserID  int64
	Title   string
	Content string
}

// UpdateNoteParams carries the fields present in an update request.
type UpdateNoteParams struct {
	Title   *string
	Content *string
}
