package note

import "context"

// Repository defines the interface for note data access. As with
// transactions, the owning user's id is threaded through every call and
// scopes the underlying query.
type Repository interface {
	Create(ctx context.Context, params CreateNoteParams) (*Note, error)
	GetByID(ctx context.Context, userID int64, id string) (*Note, error)
	List(ctx context.Context, userID int64) ([]*Note, error)
	Update(ctx context.Context, userID int64, id string, params UpdateNoteParams) (*Note, error)
	Delete(ctx context.Context, userID int64, id string) (bool, error)
}
