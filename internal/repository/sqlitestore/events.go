package sqlitestore

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/pkg/entity"
)

var (
	_ repository.EventsRepositoryI   = (*EventsRepository)(nil)
	_ repository.FreezesRepositoryI  = (*FreezesRepository)(nil)
	_ repository.XPRepositoryI       = (*XPRepository)(nil)
	_ repository.ProgressRepositoryI = (*ProgressRepository)(nil)
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type EventsRepository struct {
	db *sql.DB
}

func (er *EventsRepository) Create(ctx context.Context, event *entity.EngagementEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}
	return insertEvent(ctx, er.db, event)
}

func insertEvent(ctx context.Context, q execer, event *entity.EngagementEvent) error {
	if event.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := repository.EncodeMetadata(event.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	freezeID := sql.NullString{String: event.FreezeID, Valid: event.FreezeID != ""}
	_, err = q.ExecContext(ctx,
		`INSERT INTO engagement_events (id, user_id, stream_key, occurred_at, metadata, is_freeze_consumption, freeze_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.StreamKey, toUnix(event.OccurredAt),
		string(metadata), event.IsFreezeConsumption, freezeID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrEventExists
		}
		return errorvalues.Storage("creating event", err)
	}
	return nil
}

func (er *EventsRepository) ListByStream(ctx context.Context, userID, streamKey string) ([]entity.EngagementEvent, error) {
	rows, err := er.db.QueryContext(ctx,
		`SELECT id, user_id, stream_key, occurred_at, metadata, is_freeze_consumption, freeze_id
		 FROM engagement_events WHERE user_id = ? AND stream_key = ? ORDER BY seq`,
		userID, streamKey,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing events", err)
	}
	defer rows.Close()
	events := make([]entity.EngagementEvent, 0)
	for rows.Next() {
		var (
			e          entity.EngagementEvent
			occurredAt int64
			metadata   string
			freezeID   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.StreamKey, &occurredAt, &metadata, &e.IsFreezeConsumption, &freezeID); err != nil {
			return nil, errorvalues.Storage("event row parsing", err)
		}
		e.OccurredAt = fromUnix(occurredAt)
		e.FreezeID = freezeID.String
		if e.Metadata, err = repository.DecodeMetadata([]byte(metadata)); err != nil {
			return nil, errorvalues.Storage("event metadata parsing", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected event rows", err)
	}
	return events, nil
}

func (er *EventsRepository) DeleteByStream(ctx context.Context, userID, streamKey string) (int64, error) {
	result, err := er.db.ExecContext(ctx,
		`DELETE FROM engagement_events WHERE user_id = ? AND stream_key = ?`, userID, streamKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting events", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}
