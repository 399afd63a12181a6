package gamification

import "context"

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByUserID(ctx context.Context, userID uint) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	// ListTop returns profiles ordered by total points descending.
	ListTop(ctx context.Context, limit int) ([]*Profile, error)
	ListAll(ctx context.Context) ([]*Profile, error)
}
