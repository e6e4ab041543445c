package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

type eventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository stores the event log in the SQLite events table
func NewEventLogRepository(db *sql.DB) eventlog.Repository {
	return &eventLogRepository{db: db}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, rec eventlog.Record) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	metadata, err := nullJSON(rec.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO events (event_type, user_id, jackpot_id, payload, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.EventType, rec.UserID, rec.JackpotID, string(payload), metadata, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != nil {
		conds, args = append(conds, "user_id = ?"), append(args, *filter.UserID)
	}
	if filter.JackpotID != nil {
		conds, args = append(conds, "jackpot_id = ?"), append(args, *filter.JackpotID)
	}
	if filter.EventType != nil {
		conds, args = append(conds, "event_type = ?"), append(args, *filter.EventType)
	}
	if filter.Since != nil {
		conds, args = append(conds, "created_at >= ?"), append(args, filter.Since.UTC())
	}
	if filter.Until != nil {
		conds, args = append(conds, "created_at <= ?"), append(args, filter.Until.UTC())
	}

	query := `SELECT id, event_type, user_id, jackpot_id, payload, metadata, created_at FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, repository.NormalizeLimit(filter.Limit, repository.DefaultListLimit, repository.MaxListLimit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	events := []eventlog.Event{}
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (r *eventLogRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return res.RowsAffected()
}

func scanEvent(rows *sql.Rows) (eventlog.Event, error) {
	var (
		evt       eventlog.Event
		userID    sql.NullInt64
		jackpotID sql.NullString
		payload   string
		metadata  sql.NullString
	)
	if err := rows.Scan(&evt.ID, &evt.EventType, &userID, &jackpotID, &payload, &metadata, &evt.CreatedAt); err != nil {
		return evt, err
	}
	if userID.Valid {
		evt.UserID = &userID.Int64
	}
	if jackpotID.Valid {
		evt.JackpotID = &jackpotID.String
	}
	if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
		return evt, err
	}
	if metadata.Valid {
		if err := json.Unmarshal([]byte(metadata.String), &evt.Metadata); err != nil {
			return evt, err
		}
	}
	return evt, nil
}

func nullJSON(v map[string]interface{}) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
