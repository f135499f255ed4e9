package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)

	// UpdateOnboardingStatus advances the signup funnel; the
	// preferences service flips it to COMPLETED on the first profile
	// save.
	UpdateOnboardingStatus(ctx context.Context, userID, status string) error
}
