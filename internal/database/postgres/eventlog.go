package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository stores the event log in the events table
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, rec eventlog.Record) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	var metadata []byte
	if rec.Metadata != nil {
		if metadata, err = json.Marshal(rec.Metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO events (event_type, user_id, jackpot_id, payload, metadata)
		VALUES (@event_type, @user_id, @jackpot_id, @payload, @metadata)`,
		pgx.NamedArgs{
			"event_type": rec.EventType,
			"user_id":    rec.UserID,
			"jackpot_id": rec.JackpotID,
			"payload":    payload,
			"metadata":   metadata,
		})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	where, args := eventFilterClause(filter)
	args["limit"] = repository.NormalizeLimit(filter.Limit, repository.DefaultListLimit, repository.MaxListLimit)

	rows, err := r.db.Query(ctx, `
		SELECT id, event_type, user_id, jackpot_id, payload, metadata, created_at
		FROM events`+where+`
		ORDER BY created_at DESC, id DESC
		LIMIT @limit`, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}

	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}

func (r *eventLogRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}

// eventFilterClause renders the non-nil filter fields as a WHERE clause over named args
func eventFilterClause(filter eventlog.EventFilter) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	var conds []string
	add := func(name, cond string, v any) {
		args[name] = v
		conds = append(conds, cond)
	}

	if filter.UserID != nil {
		add("user_id", "user_id = @user_id", *filter.UserID)
	}
	if filter.JackpotID != nil {
		add("jackpot_id", "jackpot_id = @jackpot_id", *filter.JackpotID)
	}
	if filter.EventType != nil {
		add("event_type", "event_type = @event_type", *filter.EventType)
	}
	if filter.Since != nil {
		add("since", "created_at >= @since", *filter.Since)
	}
	if filter.Until != nil {
		add("until", "created_at <= @until", *filter.Until)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}

func scanEvent(row pgx.CollectableRow) (eventlog.Event, error) {
	var (
		evt               eventlog.Event
		payload, metadata []byte
	)
	if err := row.Scan(&evt.ID, &evt.EventType, &evt.UserID, &evt.JackpotID, &payload, &metadata, &evt.CreatedAt); err != nil {
		return evt, err
	}
	if err := json.Unmarshal(payload, &evt.Payload); err != nil {
		return evt, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &evt.Metadata); err != nil {
			return evt, err
		}
	}
	return evt, nil
}
