package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GenerationEvent records one provider attempt made on behalf of a content
// request: which provider served it, how long it took, and how it ended.
type GenerationEvent struct {
	ID           int64
	RequestID    string
	Purpose      string
	Provider     string
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// EventRepo manages the generation event log.
type EventRepo interface {
	// AppendGeneration stores one event.
	AppendGeneration(ctx context.Context, ev GenerationEvent) error

	// RecentGenerations returns up to limit events, newest first.
	RecentGenerations(ctx context.Context, limit int) ([]GenerationEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendGeneration(ctx context.Context, ev GenerationEvent) error {
	const q = `
INSERT INTO generation_events
	(request_id, purpose, provider, model, latency_ms, input_tokens, output_tokens, success, error_message)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		ev.RequestID, ev.Purpose, ev.Provider, ev.Model,
		ev.LatencyMs, ev.InputTokens, ev.OutputTokens,
		boolToInt(ev.Success), ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGenerations(ctx context.Context, limit int) ([]GenerationEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT id, request_id, purpose, provider, model, latency_ms,
	input_tokens, output_tokens, success, error_message, created_at
FROM generation_events
ORDER BY id DESC
LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var events []GenerationEvent
	for rows.Next() {
		var ev GenerationEvent
		var success int
		var createdAt string
		if err := rows.Scan(&ev.ID, &ev.RequestID, &ev.Purpose, &ev.Provider,
			&ev.Model, &ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens,
			&success, &ev.ErrorMessage, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		ev.Success = success != 0
		ev.CreatedAt = parseSQLiteTime(createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// parseSQLiteTime parses the text forms SQLite emits for CURRENT_TIMESTAMP.
func parseSQLiteTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
