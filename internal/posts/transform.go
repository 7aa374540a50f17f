package posts

import (
	"encoding/json"
	"time"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note flags fields that degraded while transforming an item. Degradations
// never fail the item; they are surfaced as diagnostics in the response.
type Note struct {
	DateUnparsed bool
	ImageMissing bool
}

// Transform maps one approved content item to a posts row. Returns false when
// the item has no identifier, which drops it from the batch.
//
// The parent row supplies owner and platform (items carry neither), raw is
// the item's original bytes stored verbatim for audit and replay, and
// resetStatus is the working status every split-out post starts in,
// regardless of the source item's status.
func Transform(item models.ContentItem, raw json.RawMessage, parent *models.CalendarRow, actorID, resetStatus string) (models.Post, Note, bool) {
	var note Note

	if item.ID == "" {
		return models.Post{}, note, false
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:               uuid.NewString(),
		PostID:           item.ID,
		ParentCalendarID: parent.ID,
		UserID:           parent.UserID,
		Platform:         parent.Platform,
		Status:           resetStatus,
		ContentType:      item.ContentType,
		StoragePath:      optionalString(item.StoragePath),
		OriginalJSON:     datatypes.JSON(raw),
		CreatedAt:        now,
		UpdatedAt:        now,
		UpdatedBy:        actorID,
	}

	// The scheduled timestamp is stored as the verbatim source string; it is
	// parsed only to derive month and year, and a bad value leaves both null.
	if item.ScheduledDatetime != "" {
		post.ScheduledDatetime = &item.ScheduledDatetime
		if t, err := parseISODatetime(item.ScheduledDatetime); err == nil {
			month := t.Month().String()
			year := t.Year()
			post.Month = &month
			post.Year = &year
		} else {
			note.DateUnparsed = true
		}
	}

	// Image resolution order is fixed: scalar image_link wins, then a
	// non-empty carousel serialized to a JSON string, then null.
	if s, ok := item.ImageLink.(string); ok && s != "" {
		post.ImageLink = &s
	} else if len(item.Carousel) > 0 {
		if b, err := json.Marshal(item.Carousel); err == nil {
			serialized := string(b)
			post.ImageLink = &serialized
		}
	} else {
		note.ImageMissing = true
	}

	return post, note, true
}

// parseISODatetime accepts the ISO-8601 shapes calendars actually contain:
// full RFC 3339 with offset, offset-less local timestamps, and bare dates.
func parseISODatetime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
