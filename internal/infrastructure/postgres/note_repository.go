package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/note"
)

type NoteRepository struct {
	db *DB
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, params note.CreateNoteParams) (*note.Note, error) {
	query := `
		INSERT INTO notes (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, content, created_at, updated_at
	`

	var n note.Note
	err := r.db.QueryRowContext(ctx, query, params.ID, params.UserID, params.Title, params.Content).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &n, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, userID int64, id string) (*note.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1 AND id = $2
	`

	var n note.Note
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &n, nil
}

func (r *NoteRepository) List(ctx context.Context, userID int64) ([]*note.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, userID int64, id string, params note.UpdateNoteParams) (*note.Note, error) {
	query := `
		UPDATE notes
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $3 AND id = $4
		RETURNING id, user_id, title, content, created_at, updated_at
	`

	var n note.Note
	err := r.db.QueryRowContext(ctx, query, params.Title, params.Content, userID, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	query := `DELETE FROM notes WHERE user_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}
