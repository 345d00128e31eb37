package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

const consumeFreezeSQL = `UPDATE streak_freezes SET date_consumed = $4
	WHERE user_id = $1 AND stream_key = $2 AND id = $3 AND date_consumed IS NULL AND (date_expires IS NULL OR date_expires > $4);`

type FreezesRepository struct {
	conn PgConnection
}

func NewFreezesRepoWithConn(conn PgConnection) *FreezesRepository {
	mustPing(conn, "freezesRepo")
	return &FreezesRepository{
		conn: conn,
	}
}

func (fr *FreezesRepository) Create(ctx context.Context, freeze *entity.FreezeToken) error {
	if freeze == nil {
		return errors.New("freeze is nil")
	}
	if freeze.UserID == "" {
		return errorvalues.ErrEmptyUserID
	}
	_, err := fr.conn.Exec(ctx,
		`INSERT INTO streak_freezes (id, user_id, stream_key, date_created, date_expires) VALUES ($1, $2, $3, $4, $5);`,
		freeze.ID,
		freeze.UserID,
		freeze.StreamKey,
		freeze.DateCreated,
		freeze.DateExpires,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrFreezeExists
			}
		}
		return errorvalues.Storage("creating freeze", err)
	}
	return nil
}

func (fr *FreezesRepository) GetByID(ctx context.Context, userID, streamKey, id string) (*entity.FreezeToken, error) {
	freeze := entity.FreezeToken{
		ID:        id,
		UserID:    userID,
		StreamKey: streamKey,
	}
	row := fr.conn.QueryRow(ctx,
		`SELECT date_created, date_expires, date_consumed FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 AND id = $3;`,
		userID, streamKey, id,
	)
	if err := row.Scan(&freeze.DateCreated, &freeze.DateExpires, &freeze.DateConsumed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFreezeNotFound
		}
		return nil, errorvalues.Storage("getting freeze by id", err)
	}
	return &freeze, nil
}

func (fr *FreezesRepository) ListByStream(ctx context.Context, userID, streamKey string) ([]entity.FreezeToken, error) {
	rows, err := fr.conn.Query(ctx, `SELECT id, user_id, stream_key, date_created, date_expires, date_consumed
		FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 ORDER BY date_created, seq;`, userID, streamKey)
	if err != nil {
		return nil, errorvalues.Storage("listing freezes", err)
	}
	defer rows.Close()
	freezes := make([]entity.FreezeToken, 0)
	for rows.Next() {
		var f entity.FreezeToken
		err = rows.Scan(&f.ID, &f.UserID, &f.StreamKey, &f.DateCreated, &f.DateExpires, &f.DateConsumed)
		if err != nil {
			return nil, errorvalues.Storage("freeze row parsing", err)
		}
		freezes = append(freezes, f)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected freeze rows", err)
	}
	return freezes, nil
}

func (fr *FreezesRepository) Consume(ctx context.Context, userID, streamKey, id string, at time.Time) error {
	return consumeFreeze(ctx, fr.conn, userID, streamKey, id, at)
}

func (fr *FreezesRepository) ApplyFreezes(ctx context.Context, userID, streamKey string, at time.Time, apps []entity.FreezeApplication) error {
	if len(apps) == 0 {
		return nil
	}
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return errorvalues.Storage("beginning freeze transaction", err)
	}
	for _, app := range apps {
		if err = consumeFreeze(ctx, tx, userID, streamKey, app.TokenID, at); err == nil {
			coverage := app.Coverage
			err = insertEvent(ctx, tx, &coverage)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errorvalues.Storage("committing freeze transaction", err)
	}
	return nil
}

// consumeFreeze updates the row only while the token is still available and
// explains a miss by reading the row back.
func consumeFreeze(ctx context.Context, q querier, userID, streamKey, id string, at time.Time) error {
	ct, err := q.Exec(ctx, consumeFreezeSQL, userID, streamKey, id, at)
	if err != nil {
		return errorvalues.Storage("consuming freeze", err)
	}
	if ct.RowsAffected() == 1 {
		return nil
	}
	var expires, consumed *time.Time
	row := q.QueryRow(ctx,
		`SELECT date_expires, date_consumed FROM streak_freezes WHERE user_id = $1 AND stream_key = $2 AND id = $3;`,
		userID, streamKey, id,
	)
	if err = row.Scan(&expires, &consumed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrFreezeNotFound
		}
		return errorvalues.Storage("inspecting freeze", err)
	}
	if consumed != nil {
		return errorvalues.ErrFreezeAlreadyConsumed
	}
	return errorvalues.ErrFreezeExpired
}
