package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetNamesByIDs resolves display names for a batch of user IDs.
	// Unknown IDs are simply absent from the result.
	GetNamesByIDs(ctx context.Context, userIDs []uint) (map[uint]string, error)
}
