package database

import (
	"log"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Development seed identifiers, stable so restarts don't duplicate data.
const (
	seedAdminID    = "11111111-1111-1111-1111-111111111111"
	seedUserID     = "22222222-2222-2222-2222-222222222222"
	seedCalendarID = "33333333-3333-3333-3333-333333333333"
)

// SeedDevData populates the database with development test data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	var existing models.Profile
	result := db.Where("id = ?", seedAdminID).First(&existing)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	profiles := []models.Profile{
		{ID: seedAdminID, Role: models.RoleAdmin},
		{ID: seedUserID, Role: models.RoleUser},
	}
	for i := range profiles {
		if err := db.Create(&profiles[i]).Error; err != nil {
			return err
		}
	}

	// One calendar with a mix of approved, pending, carousel-only, bad-date
	// and id-less items so the split endpoint can be exercised locally.
	calendar := models.CalendarRow{
		ID:       seedCalendarID,
		UserID:   seedUserID,
		Platform: "instagram",
		CalendarData: datatypes.JSON([]byte(`{
			"content_items": [
				{"id": "post-001", "status": "approved", "content_type": "image", "image_link": "https://cdn.example.com/post-001.png", "scheduled_datetime": "2025-10-14T09:30:00Z", "storage_path": "calendars/dev/post-001"},
				{"id": "post-002", "status": "approved", "content_type": "carousel", "carousel": ["https://cdn.example.com/post-002a.png", "https://cdn.example.com/post-002b.png"], "scheduled_datetime": "2025-10-21T17:00:00+05:30"},
				{"id": "post-003", "status": "approved", "content_type": "reel", "image_link": "https://cdn.example.com/post-003.mp4", "scheduled_datetime": "sometime next week"},
				{"status": "approved", "content_type": "image", "image_link": "https://cdn.example.com/orphan.png"},
				{"id": "post-004", "status": "draft", "content_type": "image", "image_link": "https://cdn.example.com/post-004.png"}
			]
		}`)),
	}
	if err := db.Create(&calendar).Error; err != nil {
		return err
	}

	log.Println("Seeded dev data: 2 profiles, 1 calendar with 5 content items")
	return nil
}
