package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/store"
)

// Production write policy: 50 rows per upsert call, 3 attempts per chunk with
// a fixed 2 second pause, retrying transient transport failures only.
const (
	defaultChunkSize   = 50
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

// Writer persists prepared rows through a data handle in fixed-size chunks.
// A failing chunk aborts the chunks after it; rows committed by earlier
// chunks stay committed. There is no cross-chunk transaction; the upsert
// conflict key makes a rerun converge instead.
type Writer struct {
	Log         *slog.Logger
	ChunkSize   int
	MaxAttempts int
	RetryDelay  time.Duration
}

// NewWriter creates a Writer with the production policy
func NewWriter(log *slog.Logger) *Writer {
	return &Writer{
		Log:         log,
		ChunkSize:   defaultChunkSize,
		MaxAttempts: defaultMaxAttempts,
		RetryDelay:  defaultRetryDelay,
	}
}

// Write upserts rows chunk by chunk and returns the store-reported count of
// rows written before any failure.
func (w *Writer) Write(ctx context.Context, rows []models.Post, h store.Handle) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	totalChunks := (len(rows) + w.ChunkSize - 1) / w.ChunkSize
	var saved int64
	for i := 0; i < len(rows); i += w.ChunkSize {
		end := min(i+w.ChunkSize, len(rows))
		chunkNum := i/w.ChunkSize + 1

		n, err := w.writeChunk(ctx, rows[i:end], h, chunkNum, totalChunks)
		if err != nil {
			return saved, err
		}
		saved += n
	}
	return saved, nil
}

func (w *Writer) writeChunk(ctx context.Context, chunk []models.Post, h store.Handle, chunkNum, totalChunks int) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		n, err := h.UpsertPosts(ctx, chunk)
		if err == nil {
			w.Log.Info("batch upserted",
				"batch", chunkNum, "batches", totalChunks, "rows", len(chunk))
			return n, nil
		}
		if !store.IsTransient(err) {
			w.Log.Error("non-retriable error during batch upsert",
				"batch", chunkNum, "error", err)
			return 0, err
		}

		lastErr = err
		w.Log.Warn("transient error during batch upsert",
			"batch", chunkNum, "attempt", attempt, "max_attempts", w.MaxAttempts, "error", err)
		if attempt < w.MaxAttempts {
			select {
			case <-time.After(w.RetryDelay):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
	}
	return 0, fmt.Errorf("batch %d failed after %d attempts: %w", chunkNum, w.MaxAttempts, lastErr)
}
