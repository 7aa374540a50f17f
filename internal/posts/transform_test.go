package posts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
)

var testParent = &models.CalendarRow{
	ID:       "cal-123",
	UserID:   "owner-456",
	Platform: "instagram",
}

func decodeItem(t *testing.T, raw string) (models.ContentItem, json.RawMessage) {
	t.Helper()
	var item models.ContentItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("test item does not decode: %v", err)
	}
	return item, json.RawMessage(raw)
}

func TestTransformSkipsItemWithoutID(t *testing.T) {
	item, raw := decodeItem(t, `{"status": "approved", "image_link": "https://example.com/a.png"}`)

	_, _, ok := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if ok {
		t.Fatal("expected item without id to be skipped")
	}
}

func TestTransformCopiesParentContextAndResetsStatus(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "content_type": "image", "image_link": "https://example.com/a.png"}`)

	post, note, ok := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if !ok {
		t.Fatal("expected item to transform")
	}

	if post.PostID != "p1" {
		t.Errorf("expected post_id p1, got %s", post.PostID)
	}
	if post.ParentCalendarID != "cal-123" {
		t.Errorf("expected parent calendar cal-123, got %s", post.ParentCalendarID)
	}
	if post.UserID != "owner-456" {
		t.Errorf("expected owner copied from parent, got %s", post.UserID)
	}
	if post.Platform != "instagram" {
		t.Errorf("expected platform copied from parent, got %s", post.Platform)
	}
	if post.Status != models.PostStatusInProgress {
		t.Errorf("expected status reset to %s, got %s", models.PostStatusInProgress, post.Status)
	}
	if post.UpdatedBy != "actor-1" {
		t.Errorf("expected updated_by actor-1, got %s", post.UpdatedBy)
	}
	if post.ID == "" || post.ID == post.PostID {
		t.Errorf("expected a fresh surrogate id, got %q", post.ID)
	}
	if post.CreatedAt.Location() != time.UTC {
		t.Error("expected UTC creation timestamp")
	}
	if string(post.OriginalJSON) != string(raw) {
		t.Errorf("expected original item retained verbatim, got %s", post.OriginalJSON)
	}
	if note.DateUnparsed || note.ImageMissing {
		t.Errorf("expected no degradation notes, got %+v", note)
	}
}

func TestTransformGeneratesUniqueSurrogateIDs(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "https://example.com/a.png"}`)

	first, _, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	second, _, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)

	if first.ID == second.ID {
		t.Errorf("expected distinct surrogate ids, both were %s", first.ID)
	}
}

func TestTransformDerivesMonthAndYear(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "x", "scheduled_datetime": "2025-10-14T09:30:00Z"}`)

	post, note, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)

	if post.ScheduledDatetime == nil || *post.ScheduledDatetime != "2025-10-14T09:30:00Z" {
		t.Errorf("expected scheduled_datetime stored verbatim, got %v", post.ScheduledDatetime)
	}
	if post.Month == nil || *post.Month != "October" {
		t.Errorf("expected month October, got %v", post.Month)
	}
	if post.Year == nil || *post.Year != 2025 {
		t.Errorf("expected year 2025, got %v", post.Year)
	}
	if note.DateUnparsed {
		t.Error("expected no date degradation for a valid timestamp")
	}
}

func TestTransformAcceptsOffsetAndDateOnlyTimestamps(t *testing.T) {
	cases := map[string]struct {
		value string
		month string
		year  int
	}{
		"offset":     {"2025-06-01T17:00:00+05:30", "June", 2025},
		"no offset":  {"2024-12-31T23:59:59", "December", 2024},
		"fractional": {"2025-02-03T04:05:06.789Z", "February", 2025},
		"date only":  {"2026-01-15", "January", 2026},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "x", "scheduled_datetime": "`+tc.value+`"}`)
			post, note, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
			if note.DateUnparsed {
				t.Fatalf("expected %q to parse", tc.value)
			}
			if post.Month == nil || *post.Month != tc.month {
				t.Errorf("expected month %s, got %v", tc.month, post.Month)
			}
			if post.Year == nil || *post.Year != tc.year {
				t.Errorf("expected year %d, got %v", tc.year, post.Year)
			}
		})
	}
}

func TestTransformBadDateIsNotFatal(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "x", "scheduled_datetime": "sometime next week"}`)

	post, note, ok := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if !ok {
		t.Fatal("expected item with a bad date to still transform")
	}
	if post.Month != nil || post.Year != nil {
		t.Errorf("expected null month/year, got %v %v", post.Month, post.Year)
	}
	if post.ScheduledDatetime == nil || *post.ScheduledDatetime != "sometime next week" {
		t.Errorf("expected the bad value kept verbatim, got %v", post.ScheduledDatetime)
	}
	if !note.DateUnparsed {
		t.Error("expected the date degradation to be noted")
	}
}

func TestTransformMissingDateLeavesFieldsNull(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "x"}`)

	post, note, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if post.ScheduledDatetime != nil || post.Month != nil || post.Year != nil {
		t.Error("expected null scheduling fields when scheduled_datetime is absent")
	}
	if note.DateUnparsed {
		t.Error("an absent date is not a parse failure")
	}
}

func TestTransformImageLinkWinsOverCarousel(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": "https://example.com/a.png", "carousel": ["https://example.com/b.png"]}`)

	post, _, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if post.ImageLink == nil || *post.ImageLink != "https://example.com/a.png" {
		t.Errorf("expected scalar image_link to win, got %v", post.ImageLink)
	}
}

func TestTransformCarouselSerializedToJSON(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "carousel": ["https://example.com/a.png", "https://example.com/b.png"]}`)

	post, _, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if post.ImageLink == nil {
		t.Fatal("expected carousel to produce an image value")
	}

	var links []string
	if err := json.Unmarshal([]byte(*post.ImageLink), &links); err != nil {
		t.Fatalf("image field is not a JSON list: %v", err)
	}
	if len(links) != 2 || links[0] != "https://example.com/a.png" || links[1] != "https://example.com/b.png" {
		t.Errorf("unexpected carousel serialization: %v", links)
	}
}

func TestTransformNonStringImageLinkFallsBackToCarousel(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "image_link": null, "carousel": ["https://example.com/a.png"]}`)

	post, _, _ := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if post.ImageLink == nil || *post.ImageLink != `["https://example.com/a.png"]` {
		t.Errorf("expected carousel fallback, got %v", post.ImageLink)
	}
}

func TestTransformNoImageAtAllIsNull(t *testing.T) {
	item, raw := decodeItem(t, `{"id": "p1", "status": "approved", "carousel": []}`)

	post, note, ok := Transform(item, raw, testParent, "actor-1", models.PostStatusInProgress)
	if !ok {
		t.Fatal("expected item without imagery to still transform")
	}
	if post.ImageLink != nil {
		t.Errorf("expected null image field, got %v", *post.ImageLink)
	}
	if !note.ImageMissing {
		t.Error("expected the missing image to be noted")
	}
}
