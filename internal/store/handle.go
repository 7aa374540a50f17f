package store

import (
	"context"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handle is a role-scoped data-access capability. Callers code against this
// interface only; whether row-level filtering applies is decided when the
// handle is resolved, not at call sites.
type Handle interface {
	// CalendarRow fetches one calendar row by ID. Rows hidden from the
	// handle's scope and rows that don't exist are indistinguishable: both
	// return gorm.ErrRecordNotFound.
	CalendarRow(ctx context.Context, id string) (*models.CalendarRow, error)

	// UpsertPosts inserts the rows, overwriting any existing row with the
	// same post_id. Returns the number of rows the store reports written.
	UpsertPosts(ctx context.Context, rows []models.Post) (int64, error)
}

// onConflictPostID makes the write idempotent: a matching post_id overwrites
// the existing row wholesale instead of inserting a duplicate.
var onConflictPostID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "post_id"}},
	UpdateAll: true,
}

// fullAccess bypasses row-level filtering entirely
type fullAccess struct {
	db *gorm.DB
}

func (h fullAccess) CalendarRow(ctx context.Context, id string) (*models.CalendarRow, error) {
	var row models.CalendarRow
	if err := h.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, classify("select calendar_data", err)
	}
	return &row, nil
}

func (h fullAccess) UpsertPosts(ctx context.Context, rows []models.Post) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx := h.db.WithContext(ctx).Clauses(onConflictPostID).Create(&rows)
	if tx.Error != nil {
		return 0, classify("upsert posts", tx.Error)
	}
	return tx.RowsAffected, nil
}

// rowScoped restricts reads to rows owned by ownerID and stamps ownerID onto
// every written row, mirroring what row-level security enforces server-side.
type rowScoped struct {
	db      *gorm.DB
	ownerID string
}

func (h rowScoped) CalendarRow(ctx context.Context, id string) (*models.CalendarRow, error) {
	var row models.CalendarRow
	if err := h.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, h.ownerID).First(&row).Error; err != nil {
		return nil, classify("select calendar_data", err)
	}
	return &row, nil
}

func (h rowScoped) UpsertPosts(ctx context.Context, rows []models.Post) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	for i := range rows {
		rows[i].UserID = h.ownerID
	}
	tx := h.db.WithContext(ctx).Clauses(onConflictPostID).Create(&rows)
	if tx.Error != nil {
		return 0, classify("upsert posts", tx.Error)
	}
	return tx.RowsAffected, nil
}
