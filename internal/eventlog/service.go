package eventlog

import (
	"context"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// LoggedEventTypes are the event types persisted by the event log
var LoggedEventTypes = []event.Type{
	event.ContributionApplied,
	event.JackpotWon,
}

// Service keeps an audit trail of committed contributions and rewards
type Service interface {
	// Subscribe registers the event logger on the bus
	Subscribe(bus event.Bus) error

	// RecentEvents returns logged events matching filter, newest first
	RecentEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retentionDays
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates the event log service over repo
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent persists evt. Payloads that are not JSON objects are skipped
// rather than failed so a malformed publisher cannot stall the bus.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	rec, err := recordFromEvent(evt)
	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	if err := s.repo.LogEvent(ctx, rec); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, rec.UserID, LogFieldJackpotID, rec.JackpotID)
	return nil
}

// recordFromEvent flattens the typed payload and lifts out the filterable keys.
// JSON numbers decode as float64, so user_id is converted back to int64.
func recordFromEvent(evt event.Event) (Record, error) {
	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		return Record{}, err
	}
	if payload == nil {
		return Record{}, errEmptyPayload
	}

	rec := Record{EventType: string(evt.Type), Payload: payload}
	if uid, ok := payload[PayloadKeyUserID].(float64); ok {
		id := int64(uid)
		rec.UserID = &id
	}
	if jid, ok := payload[PayloadKeyJackpotID].(string); ok && jid != "" {
		rec.JackpotID = &jid
	}
	if metadata, ok := evt.Metadata.(map[string]interface{}); ok {
		rec.Metadata = metadata
	}
	return rec, nil
}

func (s *service) RecentEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	return s.repo.DeleteEventsBefore(ctx, cutoff)
}
