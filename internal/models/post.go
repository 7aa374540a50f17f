package models

import (
	"time"

	"gorm.io/datatypes"
)

// Status markers observed across deployments. The active approved marker and
// reset status are chosen by configuration; these are the known values.
const (
	ItemStatusApproved         = "approved"
	ItemStatusApprovedCalendar = "ApprovedCalendar"

	PostStatusInProgress      = "content_in_progress"
	PostStatusPendingApproval = "PendingApprovalCalendar"
)

// Post is one split-out calendar item. PostID is the item's stable identifier
// from the source document and carries the unique constraint that makes
// re-running a split overwrite instead of duplicate.
type Post struct {
	ID                string         `gorm:"type:uuid;primaryKey" json:"id"`
	PostID            string         `gorm:"column:post_id;not null;uniqueIndex" json:"post_id"`
	ParentCalendarID  string         `json:"parent_calendar_id"`
	UserID            string         `gorm:"type:uuid;index" json:"user_id"`
	Platform          string         `json:"platform"`
	Status            string         `gorm:"not null;index" json:"status"`
	ContentType       string         `json:"content_type"`
	ImageLink         *string        `json:"image_link"`
	ScheduledDatetime *string        `json:"scheduled_datetime"`
	StoragePath       *string        `json:"storage_path"`
	OriginalJSON      datatypes.JSON `gorm:"column:original_json;type:jsonb" json:"original_json"`
	Month             *string        `json:"month"`
	Year              *int           `json:"year"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	UpdatedBy         string         `json:"updated_by"`
}
