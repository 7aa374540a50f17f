package posts

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/auth"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/config"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SplitCalendarRequest is the body of POST /split-calendar
type SplitCalendarRequest struct {
	CalendarRowID string `json:"calendarRowId" binding:"required"`
}

// SplitCalendarResponse summarizes one split run. ProcessedRowID is omitted
// when there was nothing to process; the two diagnostic counters are omitted
// when zero.
type SplitCalendarResponse struct {
	Message              string `json:"message"`
	ProcessedRowID       string `json:"processed_row_id,omitempty"`
	ApprovedPostsFound   int    `json:"approved_posts_found"`
	PostsSavedCount      int64  `json:"posts_saved_count"`
	PostsSkippedCount    int    `json:"posts_skipped_count,omitempty"`
	PartialFieldFailures int    `json:"partial_field_failures,omitempty"`
}

// Handler serves the calendar split endpoint
type Handler struct {
	Cfg    *config.Config
	Log    *slog.Logger
	Writer *Writer
}

// NewHandler creates the handler with the production batch writer
func NewHandler(cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		Cfg:    cfg,
		Log:    log,
		Writer: NewWriter(log),
	}
}

// SplitCalendar handles POST /split-calendar: fetch the calendar row through
// the caller's data handle, transform its approved items, and upsert them as
// individual posts rows.
func (h *Handler) SplitCalendar(c *gin.Context) {
	var req SplitCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calendarRowId is required"})
		return
	}

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request is not authorized"})
		return
	}
	handle, ok := auth.HandleFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request is not authorized"})
		return
	}

	log := h.Log.With("calendar_id", req.CalendarRowID, "user_id", identity.UserID, "role", identity.Role)
	log.Info("processing calendar row")

	ctx := c.Request.Context()
	row, err := handle.CalendarRow(ctx, req.CalendarRowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nonexistent rows and rows hidden from a non-admin caller look
			// the same on purpose, so existence never leaks.
			log.Warn("calendar row not found or access denied")
			c.JSON(http.StatusNotFound, gin.H{"error": "Calendar data not found or access denied"})
			return
		}
		log.Error("calendar fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	approved := h.filterApproved(row, log)
	if len(approved) == 0 {
		log.Info("no approved posts found")
		c.JSON(http.StatusOK, SplitCalendarResponse{Message: "No approved posts to process."})
		return
	}
	log.Info("found approved posts", "count", len(approved))

	rows := make([]models.Post, 0, len(approved))
	var skipped, partial int
	for _, cand := range approved {
		post, note, ok := Transform(cand.item, cand.raw, row, identity.UserID, h.Cfg.PostResetStatus)
		if !ok {
			log.Warn("content item has no id, skipping")
			skipped++
			continue
		}
		if note.DateUnparsed {
			log.Warn("could not parse scheduled_datetime",
				"post_id", post.PostID, "scheduled_datetime", cand.item.ScheduledDatetime)
			partial++
		}
		if note.ImageMissing {
			log.Warn("no image_link or carousel found", "post_id", post.PostID)
			partial++
		}
		rows = append(rows, post)
	}
	log.Info("prepared rows for upsert", "rows", len(rows), "skipped", skipped)

	saved, err := h.Writer.Write(ctx, rows, handle)
	if err != nil {
		log.Error("batch write failed", "saved_before_failure", saved, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save batch: " + err.Error()})
		return
	}

	log.Info("calendar processed", "approved", len(approved), "saved", saved, "skipped", skipped)
	c.JSON(http.StatusOK, SplitCalendarResponse{
		Message:              "Successfully processed approved posts.",
		ProcessedRowID:       req.CalendarRowID,
		ApprovedPostsFound:   len(approved),
		PostsSavedCount:      saved,
		PostsSkippedCount:    skipped,
		PartialFieldFailures: partial,
	})
}

// candidate pairs an item's decoded view with its original bytes
type candidate struct {
	item models.ContentItem
	raw  json.RawMessage
}

// filterApproved decodes the calendar document and selects the items whose
// status equals the configured approved marker. Undecodable documents and
// items are treated as having nothing approved, not as errors.
func (h *Handler) filterApproved(row *models.CalendarRow, log *slog.Logger) []candidate {
	if len(row.CalendarData) == 0 {
		return nil
	}

	var doc models.CalendarDocument
	if err := json.Unmarshal(row.CalendarData, &doc); err != nil {
		log.Warn("calendar document is not valid JSON", "error", err)
		return nil
	}

	var approved []candidate
	for _, raw := range doc.ContentItems {
		var item models.ContentItem
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Warn("content item does not decode, ignoring", "error", err)
			continue
		}
		if item.Status == h.Cfg.ApprovedStatus {
			approved = append(approved, candidate{item: item, raw: raw})
		}
	}
	return approved
}
