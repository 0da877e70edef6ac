package referral

import "context"

type Repository interface {
	// Create inserts the referral stamped with the current time.
	Create(ctx context.Context, r *Referral) error
	// List returns all referrals joined with patient names, id DESC.
	List(ctx context.Context) ([]*Referral, error)
}
