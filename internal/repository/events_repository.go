package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

const insertEventSQL = `INSERT INTO engagement_events (id, user_id, stream_key, occurred_at, metadata, is_freeze_consumption, freeze_id) VALUES ($1, $2, $3, $4, $5, $6, $7);`

type EventsRepository struct {
	conn PgConnection
}

func NewEventsRepoWithConn(conn PgConnection) *EventsRepository {
	mustPing(conn, "eventsRepo")
	return &EventsRepository{
		conn: conn,
	}
}

func (er *EventsRepository) Create(ctx context.Context, event *entity.EngagementEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}
	return insertEvent(ctx, er.conn, event)
}

func insertEvent(ctx context.Context, q querier, event *entity.EngagementEvent) error {
	if event.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := EncodeMetadata(event.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	var freezeID *string
	if event.FreezeID != "" {
		freezeID = &event.FreezeID
	}
	_, err = q.Exec(ctx, insertEventSQL,
		event.ID,
		event.UserID,
		event.StreamKey,
		event.OccurredAt,
		metadata,
		event.IsFreezeConsumption,
		freezeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrEventExists
			}
		}
		return errorvalues.Storage("creating event", err)
	}
	return nil
}

func (er *EventsRepository) ListByStream(ctx context.Context, userID, streamKey string) ([]entity.EngagementEvent, error) {
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, stream_key, occurred_at, metadata, is_freeze_consumption, freeze_id
		FROM engagement_events WHERE user_id = $1 AND stream_key = $2 ORDER BY seq;`, userID, streamKey)
	if err != nil {
		return nil, errorvalues.Storage("listing events", err)
	}
	defer rows.Close()
	events := make([]entity.EngagementEvent, 0)
	for rows.Next() {
		var (
			e        entity.EngagementEvent
			metadata []byte
			freezeID *string
		)
		err = rows.Scan(&e.ID, &e.UserID, &e.StreamKey, &e.OccurredAt, &metadata, &e.IsFreezeConsumption, &freezeID)
		if err != nil {
			return nil, errorvalues.Storage("event row parsing", err)
		}
		if e.Metadata, err = DecodeMetadata(metadata); err != nil {
			return nil, errorvalues.Storage("event metadata parsing", err)
		}
		if freezeID != nil {
			e.FreezeID = *freezeID
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected event rows", err)
	}
	return events, nil
}

func (er *EventsRepository) DeleteByStream(ctx context.Context, userID, streamKey string) (int64, error) {
	ct, err := er.conn.Exec(ctx, `DELETE FROM engagement_events WHERE user_id = $1 AND stream_key = $2;`, userID, streamKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting events", err)
	}
	return ct.RowsAffected(), nil
}
