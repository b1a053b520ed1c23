package transaction

import "context"

// Repository defines the interface for transaction data access. Every
// operation takes the owning user's id; implementations must scope the
// underlying query with it so that another user's records behave exactly
// like records that do not exist.
type Repository interface {
	Create(ctx context.Context, params CreateTransactionParams) (*Transaction, error)
	GetByID(ctx context.Context, userID int64, id string) (*Transaction, error)
	List(ctx context.Context, userID int64, filter Filter) ([]*Transaction, error)
	Update(ctx context.Context, userID int64, id string, params UpdateTransactionParams) (*Transaction, error)
	Delete(ctx context.Context, userID int64, id string) (bool, error)
}
