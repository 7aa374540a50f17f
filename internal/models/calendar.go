package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CalendarRow is one row of the calendar_data table: a user-owned content
// calendar with its scheduled items embedded as a JSONB document. Rows are
// created and edited elsewhere; this service only reads them.
type CalendarRow struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Platform     string         `json:"platform"`
	CalendarData datatypes.JSON `gorm:"type:jsonb" json:"calendar_data"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName overrides the default pluralization ("calendar_rows")
func (CalendarRow) TableName() string {
	return "calendar_data"
}

// CalendarDocument is the shape of the calendar_data JSONB column. Items are
// kept as raw bytes so each one can be stored verbatim in the split-out row.
type CalendarDocument struct {
	ContentItems []json.RawMessage `json:"content_items"`
}

// ContentItem is the lenient view of one scheduled item inside a calendar
// document. image_link is typed as any because calendars produced by older
// frontends occasionally carry a list or null there.
type ContentItem struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ContentType       string `json:"content_type"`
	ImageLink         any    `json:"image_link"`
	Carousel          []any  `json:"carousel"`
	ScheduledDatetime string `json:"scheduled_datetime"`
	StoragePath       string `json:"storage_path"`
}
