package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

type XPRepository struct {
	conn PgConnection
}

func NewXPRepoWithConn(conn PgConnection) *XPRepository {
	mustPing(conn, "xpRepo")
	return &XPRepository{
		conn: conn,
	}
}

func (xr *XPRepository) Create(ctx context.Context, event *entity.XPEvent) error {
	if event == nil {
		return errors.New("xp event is nil")
	}
	if event.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	metadata, err := EncodeMetadata(event.Metadata)
	if err != nil {
		return errorvalues.ErrInvalidMetadata
	}
	_, err = xr.conn.Exec(ctx,
		`INSERT INTO xp_events (id, user_id, experience_key, points, occurred_at, metadata) VALUES ($1, $2, $3, $4, $5, $6);`,
		event.ID,
		event.UserID,
		event.ExperienceKey,
		event.Points,
		event.OccurredAt,
		metadata,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrXPEventExists
			}
		}
		return errorvalues.Storage("creating xp event", err)
	}
	return nil
}

func (xr *XPRepository) ListByKey(ctx context.Context, userID, experienceKey string) ([]entity.XPEvent, error) {
	rows, err := xr.conn.Query(ctx, `SELECT id, user_id, experience_key, points, occurred_at, metadata
		FROM xp_events WHERE user_id = $1 AND experience_key = $2 ORDER BY seq;`, userID, experienceKey)
	if err != nil {
		return nil, errorvalues.Storage("listing xp events", err)
	}
	defer rows.Close()
	events := make([]entity.XPEvent, 0)
	for rows.Next() {
		var (
			e        entity.XPEvent
			metadata []byte
		)
		err = rows.Scan(&e.ID, &e.UserID, &e.ExperienceKey, &e.Points, &e.OccurredAt, &metadata)
		if err != nil {
			return nil, errorvalues.Storage("xp event row parsing", err)
		}
		if e.Metadata, err = DecodeMetadata(metadata); err != nil {
			return nil, errorvalues.Storage("xp event metadata parsing", err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected xp event rows", err)
	}
	return events, nil
}

func (xr *XPRepository) DeleteByKey(ctx context.Context, userID, experienceKey string) (int64, error) {
	ct, err := xr.conn.Exec(ctx, `DELETE FROM xp_events WHERE user_id = $1 AND experience_key = $2;`, userID, experienceKey)
	if err != nil {
		return 0, errorvalues.Storage("deleting xp events", err)
	}
	return ct.RowsAffected(), nil
}
