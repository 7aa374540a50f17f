package store

import (
	"context"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"gorm.io/gorm"
)

// Store wraps the process-wide service-role database connection. It is
// constructed once at startup, never mutated afterwards, and hands out
// role-scoped Handles per request.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an initialized connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FullAccess returns a handle that sees every row, for admin callers
func (s *Store) FullAccess() Handle {
	return fullAccess{db: s.db}
}

// RowScoped returns a fresh request-scoped handle restricted to rows owned by
// the given user. Handles are cheap and must not be reused across requests.
func (s *Store) RowScoped(ownerID string) Handle {
	return rowScoped{db: s.db, ownerID: ownerID}
}

// ProfileRole looks up the role recorded for an authenticated subject.
// Returns gorm.ErrRecordNotFound (wrapped) when no profile row exists.
func (s *Store) ProfileRole(ctx context.Context, userID string) (string, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&profile).Error; err != nil {
		return "", classify("select profile", err)
	}
	return profile.Role, nil
}
